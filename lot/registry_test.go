package lot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrilotorg/libagrilot-go/account"
	"github.com/agrilotorg/libagrilot-go/notify"
)

func makeID(seed byte) account.ID {
	var id account.ID
	for i := range id {
		id[i] = seed
	}
	return id
}

var testNow = time.Unix(1700000000, 0)

func testParams() RegisterParams {
	return RegisterParams{
		Owner:         makeID(0x01),
		Name:          "north field",
		YieldEstimate: 500,
		HarvestTime:   testNow.Unix() + 86400,
		TokenMint:     makeID(0x02),
	}
}

func newTestRegistry() *Registry {
	return NewRegistry(NewMemStore(), FixedClock{T: testNow}, nil)
}

func TestRegister(t *testing.T) {
	r := newTestRegistry()

	l, err := r.Register(context.Background(), testParams())
	require.NoError(t, err)
	assert.Equal(t, makeID(0x01), l.Owner)
	assert.Equal(t, "north field", l.Name)
	assert.Equal(t, uint64(500), l.YieldEstimate)
	assert.Equal(t, testNow.Unix()+86400, l.HarvestTime)
	assert.Equal(t, makeID(0x02), l.TokenMint)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterParams)
		wantErr error
	}{
		{"zero yield", func(p *RegisterParams) { p.YieldEstimate = 0 }, ErrInsufficientYield},
		{"harvest in past", func(p *RegisterParams) { p.HarvestTime = testNow.Unix() - 1 }, ErrInvalidHarvestTime},
		{"harvest equals now", func(p *RegisterParams) { p.HarvestTime = testNow.Unix() }, ErrInvalidHarvestTime},
		{"zero owner", func(p *RegisterParams) { p.Owner = account.Zero }, ErrMissingOwner},
		{"zero mint", func(p *RegisterParams) { p.TokenMint = account.Zero }, ErrMissingMint},
		{"name too long", func(p *RegisterParams) {
			p.Name = "0123456789012345678901234567890123456789X" // 41 bytes
		}, ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry()
			params := testParams()
			tt.mutate(&params)

			_, err := r.Register(context.Background(), params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegister_MinimalYieldSucceeds(t *testing.T) {
	r := newTestRegistry()
	params := testParams()
	params.YieldEstimate = 1

	_, err := r.Register(context.Background(), params)
	assert.NoError(t, err)
}

func TestRegister_HarvestOneSecondAhead(t *testing.T) {
	r := newTestRegistry()
	params := testParams()
	params.HarvestTime = testNow.Unix() + 1

	_, err := r.Register(context.Background(), params)
	assert.NoError(t, err)
}

func TestRegister_NameAtBound(t *testing.T) {
	r := newTestRegistry()
	params := testParams()
	params.Name = "0123456789012345678901234567890123456789" // exactly 40 bytes

	_, err := r.Register(context.Background(), params)
	assert.NoError(t, err)
}

func TestRegister_MultiByteNameCountsEncodedBytes(t *testing.T) {
	r := newTestRegistry()
	params := testParams()
	// 14 runes, 42 encoded bytes.
	params.Name = "ファームファームファームファ"

	_, err := r.Register(context.Background(), params)
	assert.ErrorIs(t, err, ErrNameTooLong)
}

func TestRegister_DuplicateOwnerRejected(t *testing.T) {
	r := newTestRegistry()
	ctx := context.Background()

	_, err := r.Register(ctx, testParams())
	require.NoError(t, err)

	// Different metadata, same owner: still rejected, never merged.
	params := testParams()
	params.Name = "south field"
	_, err = r.Register(ctx, params)
	assert.ErrorIs(t, err, ErrLotExists)
}

func TestRegister_EmitsLotInitialized(t *testing.T) {
	bus := notify.NewBus()
	var got []notify.Event
	bus.Subscribe(notify.EventTypeLotInitialized, func(ctx context.Context, e notify.Event) {
		got = append(got, e)
	})

	r := NewRegistry(NewMemStore(), FixedClock{T: testNow}, bus)
	params := testParams()
	_, err := r.Register(context.Background(), params)
	require.NoError(t, err)

	require.Len(t, got, 1)
	event := got[0].(notify.LotInitialized)
	assert.Equal(t, params.Name, event.Name)
	assert.Equal(t, params.Owner, event.Owner)
	assert.Equal(t, params.YieldEstimate, event.YieldEstimate)
	assert.Equal(t, params.HarvestTime, event.HarvestTime)
}

func TestRegister_RejectedLeavesNoState(t *testing.T) {
	r := newTestRegistry()
	params := testParams()
	params.YieldEstimate = 0

	_, err := r.Register(context.Background(), params)
	require.Error(t, err)

	_, err = r.Get(context.Background(), params.Owner)
	assert.ErrorIs(t, err, ErrLotNotFound)
}

func TestGet_RoundTrip(t *testing.T) {
	r := newTestRegistry()
	ctx := context.Background()

	created, err := r.Register(ctx, testParams())
	require.NoError(t, err)

	loaded, err := r.Get(ctx, created.Owner)
	require.NoError(t, err)
	assert.Equal(t, created, loaded)
}

func TestGet_UnknownOwner(t *testing.T) {
	r := newTestRegistry()
	_, err := r.Get(context.Background(), makeID(0x42))
	assert.ErrorIs(t, err, ErrLotNotFound)
}
