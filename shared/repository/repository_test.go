package repository_test

import (
	"context"
	"testing"

	"frontdesk/helper"
	"frontdesk/infras/otel"
	"frontdesk/infras/otel/mocks"
	"frontdesk/infras/sqlite"
	"frontdesk/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type note struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (n note) RecordID() string {
	return n.ID
}

func newDocuments(t *testing.T) repository.Documents {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, helper.MigrateLocalInstance(db.DB, "schema_migrations"))

	return repository.NewDocuments("local", db, db, mocks.NewOtel())
}

func TestDocuments_PutGetAll(t *testing.T) {
	ctx := context.Background()
	docs := newDocuments(t)

	err := docs.Put(ctx, "groups",
		repository.Document{ID: "GRP-1", Data: `{"id":"GRP-1","groupName":"Sharma Wedding"}`},
		repository.Document{ID: "GRP-2", Data: `{"id":"GRP-2","groupName":"Infosys Offsite"}`},
	)
	require.NoError(t, err)

	doc, found, err := docs.Get(ctx, "groups", "GRP-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"id":"GRP-1","groupName":"Sharma Wedding"}`, doc.Data)

	_, found, err = docs.Get(ctx, "groups", "GRP-404")
	require.NoError(t, err)
	assert.False(t, found)

	all, err := docs.All(ctx, "groups")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDocuments_PutUpsertsByID(t *testing.T) {
	ctx := context.Background()
	docs := newDocuments(t)

	require.NoError(t, docs.Put(ctx, "rooms", repository.Document{ID: "A101", Data: `{"id":"A101","status":"VACANT"}`}))
	require.NoError(t, docs.Put(ctx, "rooms", repository.Document{ID: "A101", Data: `{"id":"A101","status":"DIRTY"}`}))

	all, err := docs.All(ctx, "rooms")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.JSONEq(t, `{"id":"A101","status":"DIRTY"}`, all[0].Data)
}

func TestDocuments_PutRejectsMissingID(t *testing.T) {
	ctx := context.Background()
	docs := newDocuments(t)

	err := docs.Put(ctx, "rooms",
		repository.Document{ID: "A101", Data: `{"id":"A101"}`},
		repository.Document{Data: `{}`},
	)
	assert.Error(t, err)

	all, err := docs.All(ctx, "rooms")
	require.NoError(t, err)
	assert.Empty(t, all, "failed batch must not leave partial writes")
}

func TestDocuments_Delete(t *testing.T) {
	ctx := context.Background()
	docs := newDocuments(t)

	require.NoError(t, docs.Put(ctx, "bookings",
		repository.Document{ID: "B-aaaaa", Data: `{"id":"B-aaaaa"}`},
		repository.Document{ID: "B-bbbbb", Data: `{"id":"B-bbbbb"}`},
	))

	require.NoError(t, docs.Delete(ctx, "bookings", "B-aaaaa"))
	require.NoError(t, docs.Delete(ctx, "bookings"))

	all, err := docs.All(ctx, "bookings")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "B-bbbbb", all[0].ID)
}

func TestRepository_TypedRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewRepository[note]("note", "quotations", newDocuments(t), mocks.NewOtel())

	require.NoError(t, repo.BulkPut(ctx, []note{
		{ID: "Q-1", Title: "Banquet quote"},
		{Title: "no id, skipped"},
		{ID: "Q-2", Title: "Conference quote"},
	}))

	got, err := repo.Get(ctx, "Q-2")
	require.NoError(t, err)
	assert.Equal(t, "Conference quote", got.Title)

	missing, err := repo.Get(ctx, "Q-404")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	all, err := repo.ToArray(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.Delete(ctx, "Q-1"))

	all, err = repo.ToArray(ctx)
	require.NoError(t, err)
	assert.Equal(t, []note{{ID: "Q-2", Title: "Conference quote"}}, all)
}

func TestDocuments_FailedQueryIsTraced(t *testing.T) {
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	docs := repository.NewDocuments("local", db, db, otel.NewWithProvider(provider))

	_, err = docs.All(context.Background(), "rooms")
	require.Error(t, err)

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.NotEmpty(t, ended[0].Events())
}
