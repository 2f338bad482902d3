// file: internals/features/templates/dto/template_dto.go
package dto

type UpdateTemplateRequest struct {
	Content string `json:"content" validate:"required"`
}

type BulkUpdateItem struct {
	Key     string `json:"key" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type BulkUpdateRequest struct {
	Updates []BulkUpdateItem `json:"updates" validate:"required,min=1,dive"`
}
