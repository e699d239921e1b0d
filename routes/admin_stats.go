package routes

import (
	"time"

	"github.com/czdsgnr/roubenky/models"
	"github.com/czdsgnr/roubenky/services"
	"github.com/czdsgnr/roubenky/storage"

	"github.com/kataras/iris/v12"
)

// GET /api/admin/stats
// Back-office dashboard numbers: reservation counts by status, confirmed
// revenue, and the next arrival.
func AdminStats(ctx iris.Context) {
	var pending, confirmed, cancelled int64
	storage.DB.Model(&models.Reservation{}).Where("status = ?", models.ReservationPending).Count(&pending)
	storage.DB.Model(&models.Reservation{}).Where("status = ?", models.ReservationConfirmed).Count(&confirmed)
	storage.DB.Model(&models.Reservation{}).Where("status = ?", models.ReservationCancelled).Count(&cancelled)

	today := services.Midnight(time.Now())

	var upcoming int64
	storage.DB.Model(&models.Reservation{}).
		Where("status = ? AND check_in >= ?", models.ReservationConfirmed, today).
		Count(&upcoming)

	var revenue int64
	storage.DB.Model(&models.Reservation{}).
		Where("status = ?", models.ReservationConfirmed).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&revenue)

	var nextArrival models.Reservation
	hasNext := storage.DB.
		Where("status = ? AND check_in >= ?", models.ReservationConfirmed, today).
		Order("check_in ASC").
		First(&nextArrival).Error == nil

	data := iris.Map{
		"pending":          pending,
		"confirmed":        confirmed,
		"cancelled":        cancelled,
		"upcoming":         upcoming,
		"confirmedRevenue": revenue,
	}
	if hasNext {
		data["nextArrival"] = iris.Map{
			"id":      nextArrival.ID,
			"name":    nextArrival.Name,
			"checkin": nextArrival.CheckIn.Format("2006-01-02"),
			"guests":  nextArrival.Guests,
		}
	}

	ctx.JSON(iris.Map{"success": true, "data": data})
}
