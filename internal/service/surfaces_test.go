package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartwave/smartwave-go/internal/domain/card"
	apperrors "github.com/smartwave/smartwave-go/internal/errors"
	backendmock "github.com/smartwave/smartwave-go/internal/mocks/backend"
	"github.com/smartwave/smartwave-go/internal/testutil"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

type staticWallet struct{}

func (staticWallet) WalletURL(kind, shortURL, token string) string {
	return "https://api.example/api/wallet/" + kind + "?shorturl=" + shortURL + "&token=" + token
}

func TestPassService_RequiresSession(t *testing.T) {
	svc, err := NewPassService(PassServiceOptions{
		Backend: &backendmock.MockBackend{},
		Tokens:  staticToken(""),
	})
	require.NoError(t, err)

	_, err = svc.List(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.NotEmpty(t, apperrors.GetHint(err))
}

func TestPassService_List(t *testing.T) {
	b := &backendmock.MockBackend{
		PassesFunc: func(_ context.Context, token string) (card.PassList, error) {
			assert.Equal(t, "tok", token)
			return card.PassList{
				Passes:          []card.Pass{{ID: "p1", Name: "Lobby", Type: card.PassTypeAccess}},
				CorporatePasses: []card.Pass{{ID: "p2", Name: "Summit", Type: card.PassTypeEvent}},
			}, nil
		},
	}
	svc, err := NewPassService(PassServiceOptions{Backend: b, Tokens: staticToken("tok")})
	require.NoError(t, err)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list.Passes, 1)
	assert.Len(t, list.CorporatePasses, 1)
}

func TestPassService_RequestAccessIsOptimisticallyPending(t *testing.T) {
	b := &backendmock.MockBackend{
		RequestPassAccessFunc: func(_ context.Context, _, passID string) (card.Membership, error) {
			// Backend omits the status on a fresh join request.
			return card.Membership{ID: "m1", PassID: passID}, nil
		},
	}
	svc, err := NewPassService(PassServiceOptions{Backend: b, Tokens: staticToken("tok")})
	require.NoError(t, err)

	m, err := svc.RequestAccess(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, card.MembershipPending, m.Status)
}

func TestPassService_RequestAccessKeepsExplicitStatus(t *testing.T) {
	b := &backendmock.MockBackend{
		RequestPassAccessFunc: func(context.Context, string, string) (card.Membership, error) {
			return card.Membership{ID: "m1", Status: card.MembershipApproved}, nil
		},
	}
	svc, err := NewPassService(PassServiceOptions{Backend: b, Tokens: staticToken("tok")})
	require.NoError(t, err)

	m, err := svc.RequestAccess(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, card.MembershipApproved, m.Status)
}

func TestPassService_WalletURL(t *testing.T) {
	svc, err := NewPassService(PassServiceOptions{
		Backend: &backendmock.MockBackend{},
		Tokens:  staticToken("tok"),
		Wallet:  staticWallet{},
	})
	require.NoError(t, err)

	url, err := svc.WalletURL("apple", "https://sw.example/ada")
	require.NoError(t, err)
	assert.Contains(t, url, "/api/wallet/apple")
	assert.Contains(t, url, "token=tok")

	_, err = svc.WalletURL("samsung", "x")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestNotificationService_ListStripsHTML(t *testing.T) {
	b := &backendmock.MockBackend{
		NotificationsFunc: func(_ context.Context, _ string, includeRead bool) ([]card.Notification, error) {
			assert.False(t, includeRead)
			return []card.Notification{
				{ID: "n1", Title: "Welcome", Body: "<p>Hello <b>Ada</b></p><br>Enjoy!"},
			}, nil
		},
	}
	svc, err := NewNotificationService(NotificationServiceOptions{Backend: b, Tokens: staticToken("tok")})
	require.NoError(t, err)

	items, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Hello Ada Enjoy!", items[0].PlainBody)
}

func TestNotificationService_UnreadCount(t *testing.T) {
	b := &backendmock.MockBackend{
		NotificationsFunc: func(context.Context, string, bool) ([]card.Notification, error) {
			return []card.Notification{
				{ID: "n1"},
				{ID: "n2", IsRead: true},
				{ID: "n3"},
			}, nil
		},
	}
	svc, err := NewNotificationService(NotificationServiceOptions{Backend: b, Tokens: staticToken("tok")})
	require.NoError(t, err)

	count, err := svc.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNotificationService_MarkRead(t *testing.T) {
	var marked string
	b := &backendmock.MockBackend{
		MarkNotificationReadFunc: func(_ context.Context, _, id string) error {
			marked = id
			return nil
		},
	}
	svc, err := NewNotificationService(NotificationServiceOptions{Backend: b, Tokens: staticToken("tok")})
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(context.Background(), "n1"))
	assert.Equal(t, "n1", marked)

	err = svc.MarkRead(context.Background(), "")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestProfileService_GetAndUpdate(t *testing.T) {
	var updated map[string]any
	b := &backendmock.MockBackend{
		ProfileFunc: func(context.Context, string) (card.Profile, error) {
			return testutil.NewProfile().Build(), nil
		},
		UpdateProfileFunc: func(_ context.Context, _ string, updates map[string]any) error {
			updated = updates
			return nil
		},
	}
	svc, err := NewProfileService(ProfileServiceOptions{Backend: b, Tokens: staticToken("tok")})
	require.NoError(t, err)

	p, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", p.FullName())

	require.NoError(t, svc.Update(context.Background(), map[string]any{"title": "Director"}))
	assert.Equal(t, map[string]any{"title": "Director"}, updated)

	err = svc.Update(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
