package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"strings"

	"frontdesk/infras/otel"
	"frontdesk/infras/sqlite"
	"frontdesk/internal/domains/supervisor/model"
	"frontdesk/shared/constant"
	gRepo "frontdesk/shared/repository"
)

type Supervisor interface {
	gRepo.Table[model.Supervisor]
	FindByLoginID(ctx context.Context, loginID string) (model.Supervisor, bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Supervisor]
}

func New(db *sqlite.Connection, otel otel.Otel) Supervisor {
	docs := gRepo.NewDocuments(constant.StoreLocal, db.Read, db.Write, otel)

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Supervisor](model.EntityName, model.TableName, docs, otel),
	}
}

func (repo *repositoryImpl) FindByLoginID(ctx context.Context, loginID string) (model.Supervisor, bool, error) {
	supervisors, err := repo.ToArray(ctx)
	if err != nil {
		return model.Supervisor{}, false, err
	}

	for _, supervisor := range supervisors {
		if strings.EqualFold(supervisor.LoginID, loginID) {
			return supervisor, true, nil
		}
	}

	return model.Supervisor{}, false, nil
}
