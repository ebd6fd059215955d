package permission_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Matthew11K/wa-media-bot/internal/bot/permission"
	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_BannedDeniedFirst(t *testing.T) {
	def := &models.CommandDefinition{Name: "video", OwnerOnly: true}
	caller := &models.CallerContext{CallerJID: "111@s.whatsapp.net", IsBanned: true}

	decision, err := permission.Evaluate(context.Background(), def, caller)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, permission.ReasonBanned, decision.Reason)
}

func TestEvaluate_OwnerBypassesBan(t *testing.T) {
	def := &models.CommandDefinition{Name: "ping"}
	caller := &models.CallerContext{CallerJID: "111@s.whatsapp.net", IsBanned: true, IsOwner: true}

	decision, err := permission.Evaluate(context.Background(), def, caller)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestEvaluate_OwnerOnly(t *testing.T) {
	def := &models.CommandDefinition{Name: "ban", OwnerOnly: true}

	decision, err := permission.Evaluate(context.Background(), def, &models.CallerContext{CallerJID: "111@s.whatsapp.net"})
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, permission.ReasonOwnerOnly, decision.Reason)

	decision, err = permission.Evaluate(context.Background(), def, &models.CallerContext{CallerJID: "111@s.whatsapp.net", IsOwner: true})
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestEvaluate_GroupOnlyInPrivateChat(t *testing.T) {
	def := &models.CommandDefinition{Name: "tagall", GroupOnly: true, AdminOnly: true}
	caller := &models.CallerContext{CallerJID: "111@s.whatsapp.net", IsGroup: false}

	decision, err := permission.Evaluate(context.Background(), def, caller)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, permission.ReasonGroupOnly, decision.Reason)
}

func TestEvaluate_AdminOnlyResolvedLazily(t *testing.T) {
	def := &models.CommandDefinition{Name: "tagall", GroupOnly: true, AdminOnly: true}

	resolverCalls := 0
	caller := &models.CallerContext{
		CallerJID: "111@s.whatsapp.net",
		ChatJID:   "222@g.us",
		IsGroup:   true,
		ResolveAdmin: func(_ context.Context) (bool, error) {
			resolverCalls++
			return true, nil
		},
	}

	decision, err := permission.Evaluate(context.Background(), def, caller)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, 1, resolverCalls)
}

func TestEvaluate_AdminOnlyDeniedForNonAdmin(t *testing.T) {
	def := &models.CommandDefinition{Name: "tagall", GroupOnly: true, AdminOnly: true}

	caller := &models.CallerContext{
		CallerJID: "111@s.whatsapp.net",
		ChatJID:   "222@g.us",
		IsGroup:   true,
		ResolveAdmin: func(_ context.Context) (bool, error) {
			return false, nil
		},
	}

	decision, err := permission.Evaluate(context.Background(), def, caller)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, permission.ReasonAdminOnly, decision.Reason)
}

// Команда с adminOnly без groupOnly в личном чате не должна обращаться к
// метаданным группы.
func TestEvaluate_AdminOnlyInPrivateChatSkipsResolver(t *testing.T) {
	def := &models.CommandDefinition{Name: "settings", AdminOnly: true}

	resolverCalls := 0
	caller := &models.CallerContext{
		CallerJID: "111@s.whatsapp.net",
		IsGroup:   false,
		ResolveAdmin: func(_ context.Context) (bool, error) {
			resolverCalls++
			return false, nil
		},
	}

	decision, err := permission.Evaluate(context.Background(), def, caller)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, 0, resolverCalls)
}

func TestEvaluate_OwnerBypassesAdminCheck(t *testing.T) {
	def := &models.CommandDefinition{Name: "tagall", GroupOnly: true, AdminOnly: true}

	caller := &models.CallerContext{
		CallerJID: "111@s.whatsapp.net",
		ChatJID:   "222@g.us",
		IsGroup:   true,
		IsOwner:   true,
		ResolveAdmin: func(_ context.Context) (bool, error) {
			t.Fatal("резолвер не должен вызываться для владельца")
			return false, nil
		},
	}

	decision, err := permission.Evaluate(context.Background(), def, caller)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestEvaluate_ResolverErrorPropagates(t *testing.T) {
	def := &models.CommandDefinition{Name: "tagall", GroupOnly: true, AdminOnly: true}

	resolverErr := errors.New("метаданные группы недоступны")
	caller := &models.CallerContext{
		CallerJID: "111@s.whatsapp.net",
		ChatJID:   "222@g.us",
		IsGroup:   true,
		ResolveAdmin: func(_ context.Context) (bool, error) {
			return false, resolverErr
		},
	}

	_, err := permission.Evaluate(context.Background(), def, caller)
	require.ErrorIs(t, err, resolverErr)
}

func TestDenialMessage(t *testing.T) {
	assert.NotEmpty(t, permission.DenialMessage(permission.ReasonBanned))
	assert.NotEmpty(t, permission.DenialMessage(permission.ReasonOwnerOnly))
	assert.NotEmpty(t, permission.DenialMessage(permission.ReasonGroupOnly))
	assert.NotEmpty(t, permission.DenialMessage(permission.ReasonAdminOnly))
	assert.NotEqual(t,
		permission.DenialMessage(permission.ReasonBanned),
		permission.DenialMessage(permission.ReasonAdminOnly),
	)
}
