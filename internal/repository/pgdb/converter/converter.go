//go:generate goverter gen github.com/partlane/go-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/partlane/go-backend/internal/domain"
	"github.com/partlane/go-backend/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
}

// ManufacturerConverter преобразует сущности Manufacturer между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ManufacturerConverter interface {
	ToModel(entity *domain.Manufacturer) *ManufacturerModel
	ToEntity(model *ManufacturerModel) *domain.Manufacturer
}

// UserConverter преобразует сущности User между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertRole
// goverter:extend ConvertRoleToString
type UserConverter interface {
	ToModel(entity *domain.User) *UserModel
	ToEntity(model *UserModel) *domain.User
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutBoxStatus
// goverter:extend ConvertOutboxEventType
// goverter:extend ConvertStatusToString
// goverter:extend ConvertEventTypeToString
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertRole(s string) domain.Role {
	return domain.Role(s)
}

func ConvertRoleToString(r domain.Role) string {
	return string(r)
}

func ConvertOutBoxStatus(s string) usecase.OutboxStatus {
	return usecase.OutboxStatus(s)
}

func ConvertOutboxEventType(t string) usecase.OutboxEventType {
	return usecase.OutboxEventType(t)
}

func ConvertStatusToString(s usecase.OutboxStatus) string {
	return string(s)
}

func ConvertEventTypeToString(t usecase.OutboxEventType) string {
	return string(t)
}
