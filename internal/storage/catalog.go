package storage

import (
	"time"

	"decor-golang/internal/decoration"
)

type DecorationTechnique struct {
	ID        string `json:"id"`
	CompanyID string `json:"companyId"`
	decoration.TechniqueCatalog
	CreatedAt time.Time `json:"createdAt"`
}

type DecorationPlacement struct {
	ID        string `json:"id"`
	CompanyID string `json:"companyId"`
	decoration.Placement
	CreatedAt time.Time `json:"createdAt"`
}

type DecorationUpcharge struct {
	ID          string `json:"id"`
	TechniqueID string `json:"techniqueId"`
	decoration.Upcharge
	CreatedAt time.Time `json:"createdAt"`
}
