package mapper

import (
	"furniture-admin-api/internal/domain"
	"furniture-admin-api/internal/dto"
	"furniture-admin-api/internal/excel"
)

// ProvinceMapper converts between Province entities and their DTOs
type ProvinceMapper struct{}

// NewProvinceMapper creates a ProvinceMapper
func NewProvinceMapper() ProvinceMapper {
	return ProvinceMapper{}
}

// ToEntity builds a new Province from the request
func (m ProvinceMapper) ToEntity(req dto.ProvinceRequest) (*domain.Province, error) {
	return &domain.Province{
		BaseModel:          domain.BaseModel{Code: req.Code},
		ProvinceCode:       req.ProvinceCode,
		ProvinceKey:        req.ProvinceKey,
		ProvinceName:       req.ProvinceName,
		ProvinceCodeNumber: req.ProvinceCodeNumber,
		AreaCode:           req.AreaCode,
	}, nil
}

// UpdateEntity merges the request onto an existing Province
func (m ProvinceMapper) UpdateEntity(req dto.ProvinceRequest, entity *domain.Province) error {
	entity.ProvinceCode = req.ProvinceCode
	entity.ProvinceKey = req.ProvinceKey
	entity.ProvinceName = req.ProvinceName
	entity.ProvinceCodeNumber = req.ProvinceCodeNumber
	entity.AreaCode = req.AreaCode
	entity.Code = req.Code
	return nil
}

// ToResponse maps a Province to its client representation
func (m ProvinceMapper) ToResponse(entity *domain.Province) dto.ProvinceResponse {
	return dto.ProvinceResponse{
		ID:                 entity.ID,
		UUID:               entity.UUID,
		Code:               entity.Code,
		ProvinceCode:       entity.ProvinceCode,
		ProvinceKey:        entity.ProvinceKey,
		ProvinceName:       entity.ProvinceName,
		ProvinceCodeNumber: entity.ProvinceCodeNumber,
		AreaCode:           entity.AreaCode,
		CreatedAt:          entity.CreatedAt,
		UpdatedAt:          entity.UpdatedAt,
		Version:            entity.Version,
	}
}

// ProvinceFields is the accessor table for the province import/export
// configs
func ProvinceFields() excel.FieldMap[domain.Province] {
	strField := func(get func(*domain.Province) string, set func(*domain.Province, string)) excel.FieldAccessor[domain.Province] {
		return excel.FieldAccessor[domain.Province]{
			Get: func(p *domain.Province) any {
				if s := get(p); s != "" {
					return s
				}
				return nil
			},
			Set: func(p *domain.Province, v any) error {
				s, err := asString(v)
				set(p, s)
				return err
			},
		}
	}

	return excel.FieldMap[domain.Province]{
		"provinceCode": strField(
			func(p *domain.Province) string { return p.ProvinceCode },
			func(p *domain.Province, s string) { p.ProvinceCode = s }),
		"provinceKey": strField(
			func(p *domain.Province) string { return p.ProvinceKey },
			func(p *domain.Province, s string) { p.ProvinceKey = s }),
		"provinceName": strField(
			func(p *domain.Province) string { return p.ProvinceName },
			func(p *domain.Province, s string) { p.ProvinceName = s }),
		"provinceCodeNumber": strField(
			func(p *domain.Province) string { return p.ProvinceCodeNumber },
			func(p *domain.Province, s string) { p.ProvinceCodeNumber = s }),
		"areaCode": strField(
			func(p *domain.Province) string { return p.AreaCode },
			func(p *domain.Province, s string) { p.AreaCode = s }),
	}
}
