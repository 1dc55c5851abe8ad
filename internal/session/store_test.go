package session

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlchart-go/pkg/xlchart"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/loader"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
)

func sampleDataset(t *testing.T, name string) *models.Dataset {
	t.Helper()
	ds, err := models.NewDataset(name, []models.Column{
		{Name: "Month", Cells: []interface{}{"January", "February", "March"}},
		{Name: "Revenue", Cells: []interface{}{int64(65000), "n/a", 18.5}},
		{Name: "Flag", Cells: []interface{}{true, nil, false}},
	})
	require.NoError(t, err)
	return ds
}

// runStoreContract checks the behaviour every Store must share.
func runStoreContract(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("load missing", func(t *testing.T) {
		_, err := store.Load(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("save and load", func(t *testing.T) {
		ds := sampleDataset(t, "first.csv")
		require.NoError(t, store.Save(ctx, "s1", ds))

		got, err := store.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "first.csv", got.Name)
		assert.Equal(t, []string{"Month", "Revenue", "Flag"}, got.ColumnNames())
		assert.Equal(t, 3, got.Len())
	})

	t.Run("save replaces", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "s1", sampleDataset(t, "second.csv")))

		got, err := store.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "second.csv", got.Name)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		_, err := store.Load(ctx, "s2")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("build after load", func(t *testing.T) {
		got, err := store.Load(ctx, "s1")
		require.NoError(t, err)

		spec, err := xlchart.Build(got, xlchart.Request{Kind: xlchart.KindBar, XColumn: "Month", YColumn: "Revenue"})
		require.NoError(t, err)
		assert.Equal(t, []string{"January", "March"}, spec.Categories)
		assert.Equal(t, []float64{65000, 18.5}, spec.Values)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "s1"))
		_, err := store.Load(ctx, "s1")
		assert.ErrorIs(t, err, ErrNotFound)

		assert.NoError(t, store.Delete(ctx, "s1"))
	})
}

func TestMemoryStore_Contract(t *testing.T) {
	runStoreContract(t, NewMemoryStore())
}

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newMiniredis(t)
	runStoreContract(t, NewRedisStoreFromClient(client))
}

func TestRedisStore_NumbersDecodeAsJSONNumber(t *testing.T) {
	_, client := newMiniredis(t)
	store := NewRedisStoreFromClient(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s", sampleDataset(t, "n.csv")))
	got, err := store.Load(ctx, "s")
	require.NoError(t, err)

	revenue, ok := got.Column("Revenue")
	require.True(t, ok)
	assert.Equal(t, json.Number("65000"), revenue.Cells[0])
	assert.Equal(t, "n/a", revenue.Cells[1])
	assert.Equal(t, json.Number("18.5"), revenue.Cells[2])

	flag, _ := got.Column("Flag")
	assert.Equal(t, []interface{}{true, nil, false}, flag.Cells)
}

func TestRedisStore_NonFiniteTextFromUpload(t *testing.T) {
	_, client := newMiniredis(t)
	store := NewRedisStoreFromClient(client)
	ctx := context.Background()

	ds, err := loader.LoadCSV(strings.NewReader("X,Y\na,1\nb,NaN\nc,inf\n"), "odd.csv", loader.Options{})
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "s", ds))
	got, err := store.Load(ctx, "s")
	require.NoError(t, err)

	y, ok := got.Column("Y")
	require.True(t, ok)
	assert.Equal(t, []interface{}{json.Number("1"), "NaN", "inf"}, y.Cells)
}

func TestRedisStore_PrefixAndTTL(t *testing.T) {
	mr, client := newMiniredis(t)
	store := NewRedisStoreFromClient(client, WithPrefix("test:"), WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", sampleDataset(t, "ttl.csv")))
	assert.True(t, mr.Exists("test:abc"))
	assert.Equal(t, time.Minute, mr.TTL("test:abc"))

	mr.FastForward(2 * time.Minute)

	_, err := store.Load(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_DefaultPrefix(t *testing.T) {
	mr, client := newMiniredis(t)
	store := NewRedisStoreFromClient(client)

	require.NoError(t, store.Save(context.Background(), "xyz", sampleDataset(t, "p.csv")))
	assert.True(t, mr.Exists(DefaultPrefix+"xyz"))
	assert.Equal(t, time.Duration(0), mr.TTL(DefaultPrefix+"xyz"))
}

func TestRedisStore_CorruptPayload(t *testing.T) {
	mr, client := newMiniredis(t)
	store := NewRedisStoreFromClient(client)

	require.NoError(t, mr.Set(DefaultPrefix+"bad", "{not json"))
	_, err := store.Load(context.Background(), "bad")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNewRedisStore(t *testing.T) {
	mr, _ := newMiniredis(t)

	store, err := NewRedisStore(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(context.Background(), "s", sampleDataset(t, "url.csv")))
	assert.True(t, mr.Exists(DefaultPrefix+"s"))

	_, err = NewRedisStore(context.Background(), "not-a-url")
	assert.Error(t, err)
}
