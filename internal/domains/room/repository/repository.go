package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"frontdesk/infras/otel"
	"frontdesk/infras/sqlite"
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	gRepo "frontdesk/shared/repository"
)

type Room interface {
	gRepo.Table[model.Room]
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
}

func New(db *sqlite.Connection, otel otel.Otel) Room {
	docs := gRepo.NewDocuments(constant.StoreLocal, db.Read, db.Write, otel)

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, docs, otel),
	}
}
