package database

import (
	"fmt"
	"shroomworks/model"

	"github.com/jmoiron/sqlx"
)

func InsertManufactureInTx(tx *sqlx.Tx, rec model.ManufactureRecord) error {
	_, err := tx.Exec(`
		INSERT INTO manufactures (drink_name, manufacture_date, expiration_date, quantity, unit)
		VALUES (?, ?, ?, ?, ?)`,
		rec.DrinkName, rec.ManufactureDate, rec.ExpirationDate, rec.Quantity, rec.Unit)
	if err != nil {
		return fmt.Errorf("failed to insert manufacture record for %q: %w", rec.DrinkName, err)
	}
	return nil
}

func GetAllManufactures(dbtx DBTX) ([]model.ManufactureRecord, error) {
	records := []model.ManufactureRecord{}
	err := dbtx.Select(&records, `SELECT * FROM manufactures ORDER BY manufacture_date, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get manufacture records: %w", err)
	}
	return records, nil
}
