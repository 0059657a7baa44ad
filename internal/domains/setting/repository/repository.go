package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"frontdesk/infras/otel"
	"frontdesk/infras/sqlite"
	"frontdesk/internal/domains/setting/model"
	"frontdesk/shared/constant"
	gRepo "frontdesk/shared/repository"
)

type Settings interface {
	gRepo.Table[model.Settings]
}

type repositoryImpl struct {
	gRepo.Repository[model.Settings]
}

func New(db *sqlite.Connection, otel otel.Otel) Settings {
	docs := gRepo.NewDocuments(constant.StoreLocal, db.Read, db.Write, otel)

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Settings](model.EntityName, model.TableName, docs, otel),
	}
}
