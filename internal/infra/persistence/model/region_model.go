// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"github.com/pkg/errors"
)

const srid = 4326

// Polygon wraps orb.Polygon with EWKB scan/value support so GORM can move it
// through a PostGIS geometry(Polygon,4326) column.
type Polygon struct {
	orb.Polygon
}

// Value implements driver.Valuer, encoding the polygon as EWKB with SRID 4326.
func (p Polygon) Value() (driver.Value, error) {
	val, err := ewkb.Value(p.Polygon, srid).Value()
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode polygon as EWKB")
	}

	return val, nil
}

// Scan implements sql.Scanner, decoding EWKB (raw or hex) from PostGIS.
func (p *Polygon) Scan(value any) error {
	scanner := ewkb.Scanner(&p.Polygon)
	if err := scanner.Scan(value); err != nil {
		return errors.Wrap(err, "failed to decode EWKB polygon")
	}

	return nil
}

// GormDataType tells GORM the column type for migrations.
func (Polygon) GormDataType() string {
	return "geometry(Polygon,4326)"
}

// RegionModel is the GORM-specific struct for the 'regions' table.
type RegionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(100);not null;index"`
	Geometry  Polygon   `gorm:"type:geometry(Polygon,4326);not null;index:idx_regions_geometry,type:gist"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegionModel) TableName() string {
	return "regions"
}
