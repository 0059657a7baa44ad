package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/logger"
	"frontdesk/shared/timezone"

	"github.com/jmoiron/sqlx"
)

var (
	errRequiredID = errors.New("record id is required")
)

// Record is any entity stored as a document keyed by its id.
type Record interface {
	RecordID() string
}

// Document is the raw stored form of a record: the id plus its JSON body.
type Document struct {
	ID   string `db:"id"   json:"id"`
	Data string `db:"data" json:"data"`
}

// Documents reads and upserts raw documents on any table of one database.
type Documents interface {
	Get(ctx context.Context, table, id string) (Document, bool, error)
	All(ctx context.Context, table string) ([]Document, error)
	Put(ctx context.Context, table string, docs ...Document) error
	Delete(ctx context.Context, table string, ids ...string) error
}

// Table is the typed view over one document table.
type Table[T Record] interface {
	Get(ctx context.Context, id string) (T, error)
	ToArray(ctx context.Context) ([]T, error)
	Put(ctx context.Context, record T) error
	BulkPut(ctx context.Context, records []T) error
	Delete(ctx context.Context, id string) error
}

type documentsImpl struct {
	name  string
	read  *sqlx.DB
	write *sqlx.DB
	otel  otel.Otel
}

// NewDocuments builds a document accessor; name labels spans and logs ("local", "remote").
func NewDocuments(name string, read, write *sqlx.DB, otl otel.Otel) Documents {
	return &documentsImpl{
		name:  name,
		read:  read,
		write: write,
		otel:  otl,
	}
}

func quote(table string) string {
	return `"` + strings.ReplaceAll(table, `"`, ``) + `"`
}

func (repo *documentsImpl) spanName(op string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.name, op)
}

func (repo *documentsImpl) Get(ctx context.Context, table, id string) (doc Document, found bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Get"))
	defer scope.End()
	defer scope.TraceIfError(&err)

	query := repo.read.Rebind(fmt.Sprintf("SELECT id, data FROM %s WHERE id = ?", quote(table)))
	scope.SetAttributes(map[string]any{
		constant.OtelQueryAttributeKey: query,
		constant.OtelTableAttributeKey: table,
	})

	err = repo.read.GetContext(ctx, &doc, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return doc, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return doc, false, fmt.Errorf("failed to get document (%s.%s): %w", repo.name, table, err)
	}

	return doc, true, nil
}

func (repo *documentsImpl) All(ctx context.Context, table string) (docs []Document, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("All"))
	defer scope.End()
	defer scope.TraceIfError(&err)

	query := fmt.Sprintf("SELECT id, data FROM %s ORDER BY id", quote(table))
	scope.SetAttributes(map[string]any{
		constant.OtelQueryAttributeKey: query,
		constant.OtelTableAttributeKey: table,
	})

	docs = []Document{}

	err = repo.read.SelectContext(ctx, &docs, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list documents (%s.%s): %w", repo.name, table, err)
	}

	return docs, nil
}

func (repo *documentsImpl) Put(ctx context.Context, table string, docs ...Document) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Put"))
	defer scope.End()
	defer scope.TraceIfError(&err)

	if len(docs) == 0 {
		return nil
	}

	query := repo.write.Rebind(fmt.Sprintf(
		"INSERT INTO %s (id, data, modified_at) VALUES (?, ?, ?) "+
			"ON CONFLICT (id) DO UPDATE SET data = excluded.data, modified_at = excluded.modified_at",
		quote(table),
	))
	scope.SetAttributes(map[string]any{
		constant.OtelQueryAttributeKey: query,
		constant.OtelTableAttributeKey: table,
		"documents":                    len(docs),
	})

	tx, err := repo.write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s.%s): %w", repo.name, table, err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	modifiedAt := timezone.Now()

	for _, doc := range docs {
		if doc.ID == constant.Empty {
			err = errRequiredID

			return fmt.Errorf("failed to put document (%s.%s): %w", repo.name, table, err)
		}

		if _, err = tx.ExecContext(ctx, query, doc.ID, doc.Data, modifiedAt); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to put document %s (%s.%s): %w", doc.ID, repo.name, table, err)
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit documents (%s.%s): %w", repo.name, table, err)
	}

	return nil
}

func (repo *documentsImpl) Delete(ctx context.Context, table string, ids ...string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Delete"))
	defer scope.End()
	defer scope.TraceIfError(&err)

	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(fmt.Sprintf("DELETE FROM %s WHERE id IN (?)", quote(table)), ids)
	if err != nil {
		return fmt.Errorf("failed to build delete (%s.%s): %w", repo.name, table, err)
	}

	query = repo.write.Rebind(query)
	scope.SetAttributes(map[string]any{
		constant.OtelQueryAttributeKey: query,
		constant.OtelTableAttributeKey: table,
	})

	if _, err = repo.write.ExecContext(ctx, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to delete documents (%s.%s): %w", repo.name, table, err)
	}

	return nil
}

// Repository is the generic Table implementation over Documents.
type Repository[T Record] struct {
	docs    Documents
	otel    otel.Otel
	table   string
	entitas string
}

func NewRepository[T Record](entitasName, tableName string, docs Documents, otl otel.Otel) Repository[T] {
	return Repository[T]{
		docs:    docs,
		otel:    otl,
		table:   tableName,
		entitas: entitasName,
	}
}

// Get returns the zero value without error when the record does not exist.
func (repo *Repository[T]) Get(ctx context.Context, id string) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	var model T

	doc, found, err := repo.docs.Get(ctx, repo.table, id)
	if err != nil || !found {
		return model, err //nolint:wrapcheck
	}

	if err := json.Unmarshal([]byte(doc.Data), &model); err != nil {
		scope.TraceError(err)

		return model, fmt.Errorf("failed to decode %s %s: %w", repo.entitas, id, err)
	}

	return model, nil
}

func (repo *Repository[T]) ToArray(ctx context.Context) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.ToArray", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	docs, err := repo.docs.All(ctx, repo.table)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	models := make([]T, 0, len(docs))

	for _, doc := range docs {
		var model T

		if err := json.Unmarshal([]byte(doc.Data), &model); err != nil {
			scope.TraceError(err)

			return nil, fmt.Errorf("failed to decode %s %s: %w", repo.entitas, doc.ID, err)
		}

		models = append(models, model)
	}

	return models, nil
}

func (repo *Repository[T]) Put(ctx context.Context, record T) error {
	return repo.BulkPut(ctx, []T{record})
}

// BulkPut upserts records by id; records without an id are skipped.
func (repo *Repository[T]) BulkPut(ctx context.Context, records []T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.BulkPut", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	docs := make([]Document, 0, len(records))

	for _, record := range records {
		if record.RecordID() == constant.Empty {
			continue
		}

		data, err := json.Marshal(record)
		if err != nil {
			scope.TraceError(err)

			return fmt.Errorf("failed to encode %s %s: %w", repo.entitas, record.RecordID(), err)
		}

		docs = append(docs, Document{ID: record.RecordID(), Data: string(data)})
	}

	return repo.docs.Put(ctx, repo.table, docs...) //nolint:wrapcheck
}

func (repo *Repository[T]) Delete(ctx context.Context, id string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	return repo.docs.Delete(ctx, repo.table, id) //nolint:wrapcheck
}
