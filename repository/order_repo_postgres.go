package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"

	"fueldelivery/models"
)

type PostgresOrderRepo struct {
	DB *sql.DB
}

func NewPostgresOrderRepo(db *sql.DB) *PostgresOrderRepo {
	return &PostgresOrderRepo{DB: db}
}

const orderSelectColumns = `
	row_no, do_number, month, spo_letter, date, source, transporter, client,
	site_address_1, site_address_2, po_client, po_client_date, po_pertamina,
	pic_delivery, qty, fuel_type, fleet_number, driver_name, remarks`

func scanOrder(row interface{ Scan(...interface{}) error }) (models.DeliveryOrder, error) {
	var rec orderRecord
	err := row.Scan(
		&rec.No, &rec.DONumber, &rec.Month, &rec.SPOLetter, &rec.Date, &rec.Source,
		&rec.Transporter, &rec.Client, &rec.SiteAddress1, &rec.SiteAddress2,
		&rec.POClient, &rec.POClientDate, &rec.POPertamina, &rec.PICDelivery,
		&rec.Qty, &rec.FuelType, &rec.FleetNumber, &rec.DriverName, &rec.Remarks,
	)
	return rec.order(), err
}

func (r *PostgresOrderRepo) List(ctx context.Context) ([]models.DeliveryOrder, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+orderSelectColumns+` FROM delivery_orders ORDER BY row_no, do_number`)
	if err != nil {
		return nil, models.StoreError("list orders", err)
	}
	defer rows.Close()

	var orders []models.DeliveryOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, models.StoreError("scan order", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, models.StoreError("list orders", err)
	}
	return orders, nil
}

func (r *PostgresOrderRepo) Get(ctx context.Context, doNumber string) (*models.DeliveryOrder, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+orderSelectColumns+` FROM delivery_orders WHERE do_number=$1`, doNumber)
	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, models.StoreError("get order", err)
	}
	return &o, nil
}

// Upsert keeps the stored No of an existing DO number and numbers new rows
// max(no)+1, inside one transaction.
func (r *PostgresOrderRepo) Upsert(ctx context.Context, order models.DeliveryOrder) (models.UpsertResult, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.UpsertResult{}, models.StoreError("begin upsert", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var existingNo int64
	created := false
	err = tx.QueryRowContext(ctx, `SELECT row_no FROM delivery_orders WHERE do_number=$1 FOR UPDATE`, order.DONumber).Scan(&existingNo)
	switch {
	case err == sql.ErrNoRows:
		created = true
		err = nil
	case err != nil:
		return models.UpsertResult{}, models.StoreError("lookup order", err)
	}

	if existingNo > 0 {
		order.No = existingNo
	} else {
		if err = tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(row_no), 0) + 1 FROM delivery_orders`).Scan(&order.No); err != nil {
			return models.UpsertResult{}, models.StoreError("next row number", err)
		}
	}

	rec := newOrderRecord(order)
	_, err = tx.ExecContext(ctx, `
		INSERT INTO delivery_orders(
			row_no, do_number, month, spo_letter, date, source, transporter, client,
			site_address_1, site_address_2, po_client, po_client_date, po_pertamina,
			pic_delivery, qty, fuel_type, fleet_number, driver_name, remarks, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
		ON CONFLICT (do_number) DO UPDATE SET
			row_no=EXCLUDED.row_no, month=EXCLUDED.month, spo_letter=EXCLUDED.spo_letter,
			date=EXCLUDED.date, source=EXCLUDED.source, transporter=EXCLUDED.transporter,
			client=EXCLUDED.client, site_address_1=EXCLUDED.site_address_1,
			site_address_2=EXCLUDED.site_address_2, po_client=EXCLUDED.po_client,
			po_client_date=EXCLUDED.po_client_date, po_pertamina=EXCLUDED.po_pertamina,
			pic_delivery=EXCLUDED.pic_delivery, qty=EXCLUDED.qty, fuel_type=EXCLUDED.fuel_type,
			fleet_number=EXCLUDED.fleet_number, driver_name=EXCLUDED.driver_name,
			remarks=EXCLUDED.remarks, updated_at=EXCLUDED.updated_at
	`, rec.No, rec.DONumber, rec.Month, rec.SPOLetter, rec.Date, rec.Source, rec.Transporter,
		rec.Client, rec.SiteAddress1, rec.SiteAddress2, rec.POClient, rec.POClientDate,
		rec.POPertamina, rec.PICDelivery, rec.Qty, rec.FuelType, rec.FleetNumber,
		rec.DriverName, rec.Remarks, rec.UpdatedAt)
	if err != nil {
		return models.UpsertResult{}, models.StoreError("save order", err)
	}
	if err = tx.Commit(); err != nil {
		return models.UpsertResult{}, models.StoreError("commit order", err)
	}

	log.Info().Str("do_number", order.DONumber).Int64("no", order.No).Bool("created", created).Msg("order saved")
	return models.UpsertResult{Order: order, Created: created}, nil
}

func (r *PostgresOrderRepo) Delete(ctx context.Context, doNumber string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM delivery_orders WHERE do_number=$1`, doNumber)
	if err != nil {
		return false, models.StoreError("delete order", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, models.StoreError("delete order", err)
	}
	return n > 0, nil
}
