package mapper

import (
	"furniture-admin-api/internal/domain"
	"furniture-admin-api/internal/dto"
	"furniture-admin-api/internal/excel"
)

// ChartMapper converts between Chart entities and their DTOs
type ChartMapper struct{}

// NewChartMapper creates a ChartMapper
func NewChartMapper() ChartMapper {
	return ChartMapper{}
}

// ToEntity builds a new Chart from the request
func (m ChartMapper) ToEntity(req dto.ChartRequest) (*domain.Chart, error) {
	return &domain.Chart{
		BaseModel:      domain.BaseModel{Code: req.Code},
		Name:           req.Name,
		Description:    req.Description,
		TitleHighlight: req.TitleHighlight,
		TitleIcon:      req.TitleIcon,
		TitleText:      req.TitleText,
		TitleSubText:   req.TitleSubText,
		TitleLeft:      req.TitleLeft,
		TitleTop:       req.TitleTop,
		GridTop:        req.GridTop,
		GridLeft:       req.GridLeft,
		GridBottom:     req.GridBottom,
		GridRight:      req.GridRight,
		IsShowTitle:    req.IsShowTitle,
	}, nil
}

// UpdateEntity merges the request onto an existing Chart
func (m ChartMapper) UpdateEntity(req dto.ChartRequest, entity *domain.Chart) error {
	entity.Name = req.Name
	entity.Description = req.Description
	entity.TitleHighlight = req.TitleHighlight
	entity.TitleIcon = req.TitleIcon
	entity.TitleText = req.TitleText
	entity.TitleSubText = req.TitleSubText
	entity.TitleLeft = req.TitleLeft
	entity.TitleTop = req.TitleTop
	entity.GridTop = req.GridTop
	entity.GridLeft = req.GridLeft
	entity.GridBottom = req.GridBottom
	entity.GridRight = req.GridRight
	entity.IsShowTitle = req.IsShowTitle
	entity.Code = req.Code
	return nil
}

// ToResponse maps a Chart to its client representation
func (m ChartMapper) ToResponse(entity *domain.Chart) dto.ChartResponse {
	return dto.ChartResponse{
		ID:             entity.ID,
		UUID:           entity.UUID,
		Code:           entity.Code,
		Name:           entity.Name,
		Description:    entity.Description,
		TitleHighlight: entity.TitleHighlight,
		TitleIcon:      entity.TitleIcon,
		TitleText:      entity.TitleText,
		TitleSubText:   entity.TitleSubText,
		TitleLeft:      entity.TitleLeft,
		TitleTop:       entity.TitleTop,
		GridTop:        entity.GridTop,
		GridLeft:       entity.GridLeft,
		GridBottom:     entity.GridBottom,
		GridRight:      entity.GridRight,
		IsShowTitle:    entity.IsShowTitle,
		CreatedAt:      entity.CreatedAt,
		UpdatedAt:      entity.UpdatedAt,
		Version:        entity.Version,
	}
}

// ChartFields is the accessor table for the chart import/export configs
func ChartFields() excel.FieldMap[domain.Chart] {
	intField := func(get func(*domain.Chart) *int, set func(*domain.Chart, *int)) excel.FieldAccessor[domain.Chart] {
		return excel.FieldAccessor[domain.Chart]{
			Get: func(c *domain.Chart) any {
				if p := get(c); p != nil {
					return *p
				}
				return nil
			},
			Set: func(c *domain.Chart, v any) error {
				f, err := asFloat(v)
				if err != nil {
					return err
				}
				n := int(f)
				set(c, &n)
				return nil
			},
		}
	}
	strField := func(get func(*domain.Chart) string, set func(*domain.Chart, string)) excel.FieldAccessor[domain.Chart] {
		return excel.FieldAccessor[domain.Chart]{
			Get: func(c *domain.Chart) any {
				if s := get(c); s != "" {
					return s
				}
				return nil
			},
			Set: func(c *domain.Chart, v any) error {
				s, err := asString(v)
				set(c, s)
				return err
			},
		}
	}

	return excel.FieldMap[domain.Chart]{
		"name": {
			Get: func(c *domain.Chart) any { return c.Name },
			Set: func(c *domain.Chart, v any) error {
				s, err := asString(v)
				c.Name = s
				return err
			},
		},
		"description": strField(
			func(c *domain.Chart) string { return c.Description },
			func(c *domain.Chart, s string) { c.Description = s }),
		"titleHighlight": strField(
			func(c *domain.Chart) string { return c.TitleHighlight },
			func(c *domain.Chart, s string) { c.TitleHighlight = s }),
		"titleIcon": strField(
			func(c *domain.Chart) string { return c.TitleIcon },
			func(c *domain.Chart, s string) { c.TitleIcon = s }),
		"titleText": strField(
			func(c *domain.Chart) string { return c.TitleText },
			func(c *domain.Chart, s string) { c.TitleText = s }),
		"titleSubText": strField(
			func(c *domain.Chart) string { return c.TitleSubText },
			func(c *domain.Chart, s string) { c.TitleSubText = s }),
		"titleLeft": intField(
			func(c *domain.Chart) *int { return c.TitleLeft },
			func(c *domain.Chart, n *int) { c.TitleLeft = n }),
		"titleTop": intField(
			func(c *domain.Chart) *int { return c.TitleTop },
			func(c *domain.Chart, n *int) { c.TitleTop = n }),
		"gridTop": intField(
			func(c *domain.Chart) *int { return c.GridTop },
			func(c *domain.Chart, n *int) { c.GridTop = n }),
		"gridLeft": intField(
			func(c *domain.Chart) *int { return c.GridLeft },
			func(c *domain.Chart, n *int) { c.GridLeft = n }),
		"gridBottom": intField(
			func(c *domain.Chart) *int { return c.GridBottom },
			func(c *domain.Chart, n *int) { c.GridBottom = n }),
		"gridRight": intField(
			func(c *domain.Chart) *int { return c.GridRight },
			func(c *domain.Chart, n *int) { c.GridRight = n }),
		"isShowTitle": {
			Get: func(c *domain.Chart) any {
				if c.IsShowTitle == nil {
					return nil
				}
				return *c.IsShowTitle
			},
			Set: func(c *domain.Chart, v any) error {
				b, err := asBool(v)
				if err != nil {
					return err
				}
				c.IsShowTitle = &b
				return nil
			},
		},
	}
}
