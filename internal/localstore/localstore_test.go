package localstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicircle/scrap-pickups/internal/model"
)

func backends(t *testing.T) map[string]KV {
	t.Helper()
	sqlite, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })
	return map[string]KV{
		"memory": NewMemory(),
		"sqlite": sqlite,
	}
}

func TestKV(t *testing.T) {
	ctx := context.Background()
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := kv.Get(ctx, "5550001111", "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, kv.Set(ctx, "5550001111", "k", []byte("v1")))
			require.NoError(t, kv.Set(ctx, "5550001111", "k", []byte("v2")))
			value, ok, err := kv.Get(ctx, "5550001111", "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "v2", string(value))

			_, ok, err = kv.Get(ctx, "5559999999", "k")
			require.NoError(t, err)
			assert.False(t, ok, "owners are isolated")

			require.NoError(t, kv.Delete(ctx, "5550001111", "k"))
			_, ok, err = kv.Get(ctx, "5550001111", "k")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, kv.Delete(ctx, "5550001111", "never-set"))
		})
	}
}

func sampleRequests() []model.PickupRequest {
	return []model.PickupRequest{
		{
			ID:         "2",
			Category:   "Metals",
			Quantity:   "5 kg",
			Date:       "June 1 2025",
			TimeSlot:   "9 AM - 12 PM",
			Address:    "123 Main St",
			MapLink:    "https://maps.example/abc",
			Status:     model.RequestStatusPendingApproval,
			PickupCode: "AB12CD",
			CreatedAt:  1748736000000,
		},
		{
			ID:         "1",
			Category:   "Plastics",
			Quantity:   "2 bags",
			Date:       "May 30 2025",
			TimeSlot:   "3 PM - 6 PM",
			Address:    "9 Elm St",
			Status:     model.RequestStatusApproved,
			PickupCode: "ZZ99YY",
			CreatedAt:  1748563200000,
		},
	}
}

func TestRequestsDocumentRoundTrip(t *testing.T) {
	in := sampleRequests()
	raw, err := EncodeRequests(in)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"timeSlot":"9 AM - 12 PM"`)
	assert.Contains(t, string(raw), `"status":"Pending for Approval"`)

	second, err := EncodeRequests(in[1:])
	require.NoError(t, err)
	assert.NotContains(t, string(second), `"mapLink"`, "empty map link is omitted")

	out, err := DecodeRequests(raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeRequestsTreatsEmptyAsNoData(t *testing.T) {
	for _, raw := range []string{"", "  ", "null", "[]"} {
		out, err := DecodeRequests([]byte(raw))
		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	}

	_, err := DecodeRequests([]byte("{not json"))
	assert.Error(t, err)
}

func TestRequestsUpdate(t *testing.T) {
	ctx := context.Background()
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			store := NewRequests(kv)

			list, err := store.List(ctx, "owner")
			require.NoError(t, err)
			assert.Empty(t, list)

			want := sampleRequests()
			err = store.Update(ctx, "owner", func(current []model.PickupRequest) ([]model.PickupRequest, error) {
				return append(current, want...), nil
			})
			require.NoError(t, err)

			list, err = store.List(ctx, "owner")
			require.NoError(t, err)
			assert.Equal(t, want, list)
		})
	}
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			sessions := NewSessions(kv)
			customer := model.Principal{Phone: "5550001111", Role: model.RoleCustomer}
			partner := model.Principal{Phone: "5550001111", Role: model.RolePartner}

			active, err := sessions.Active(ctx, customer, "tok")
			require.NoError(t, err)
			assert.False(t, active)

			require.NoError(t, sessions.SaveUser(ctx, model.User{Name: "Jane", Phone: customer.Phone, Token: "tok"}))
			require.NoError(t, sessions.SavePartnerToken(ctx, partner.Phone, "ptok"))

			user, ok, err := sessions.User(ctx, customer.Phone)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "Jane", user.Name)

			active, err = sessions.Active(ctx, customer, "tok")
			require.NoError(t, err)
			assert.True(t, active)

			active, err = sessions.Active(ctx, customer, "other")
			require.NoError(t, err)
			assert.False(t, active)

			active, err = sessions.Active(ctx, partner, "ptok")
			require.NoError(t, err)
			assert.True(t, active)

			require.NoError(t, sessions.Clear(ctx, customer))
			active, err = sessions.Active(ctx, customer, "tok")
			require.NoError(t, err)
			assert.False(t, active)

			active, err = sessions.Active(ctx, partner, "ptok")
			require.NoError(t, err)
			assert.True(t, active, "clearing the customer session keeps the partner one")
		})
	}
}
