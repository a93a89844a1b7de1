package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoProvider struct {
	closed bool
}

func (p *echoProvider) Chat(_ context.Context, messages []Message) (string, error) {
	return messages[len(messages)-1].Content, nil
}

func (p *echoProvider) Close() error {
	p.closed = true
	return nil
}

func TestConfigValidate(t *testing.T) {
	valid := Config{Provider: "openai", APIKey: "sk-test", Model: "gpt-4o-mini"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&Config{APIKey: "sk", Model: "m"}).Validate())
	assert.Error(t, (&Config{Provider: "openai", Model: "m"}).Validate())
	assert.Error(t, (&Config{Provider: "openai", APIKey: "sk"}).Validate())
	assert.Error(t, (&Config{Provider: "openai", APIKey: "sk", Model: "m", Temperature: 1.5}).Validate())
}

func TestMessageValidate(t *testing.T) {
	assert.ErrorIs(t, (&Message{Content: "hi"}).Validate(), ErrEmptyRole)
	assert.ErrorIs(t, (&Message{Role: "user"}).Validate(), ErrEmptyContent)
	assert.NoError(t, (&Message{Role: "user", Content: "hi"}).Validate())
}

func TestFactoryChat(t *testing.T) {
	f := GetFactory()
	require.NoError(t, f.Initialize(Config{Provider: "openai", APIKey: "sk-test", Model: "gpt-4o-mini"}))

	_, err := f.GetProvider()
	assert.Error(t, err)

	provider := &echoProvider{}
	f.SetProvider(provider)

	reply, err := f.Chat(context.Background(), []Message{{Role: "user", Content: "echo"}})
	require.NoError(t, err)
	assert.Equal(t, "echo", reply)

	require.NoError(t, f.Close())
	assert.True(t, provider.closed)

	_, err = f.GetProvider()
	assert.Error(t, err)
}
