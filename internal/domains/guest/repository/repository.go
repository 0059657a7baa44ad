package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/infras/sqlite"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/shared/constant"
	gRepo "frontdesk/shared/repository"
)

type Guest interface {
	gRepo.Table[model.Guest]
	FindByPhone(ctx context.Context, phone string) (model.Guest, bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
}

func New(db *sqlite.Connection, otel otel.Otel) Guest {
	docs := gRepo.NewDocuments(constant.StoreLocal, db.Read, db.Write, otel)

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, docs, otel),
	}
}

// FindByPhone returns the first guest registered with phone. Phones are compared as stored.
func (repo *repositoryImpl) FindByPhone(ctx context.Context, phone string) (model.Guest, bool, error) {
	guests, err := repo.ToArray(ctx)
	if err != nil {
		return model.Guest{}, false, err
	}

	for _, guest := range guests {
		if phone != constant.Empty && guest.Phone == phone {
			return guest, true, nil
		}
	}

	return model.Guest{}, false, nil
}
