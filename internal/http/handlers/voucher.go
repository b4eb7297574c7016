package handlers

import (
	"net/http"
	"strconv"

	"rentacar/internal/domain"
	"rentacar/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /booking/:id/voucher
// Streams the booking voucher PDF.
func BookingVoucher(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RenderErrorPage(c, http.StatusBadRequest, "Voucher Error",
			[]string{"Invalid booking reference."})
		return
	}

	svc := services.VoucherService{RequestID: requestID(c)}
	data, filename, err := svc.Generate(id)
	if err != nil {
		if domain.IsNotFound(err) {
			RenderErrorPage(c, http.StatusNotFound, "Voucher Error",
				[]string{"Booking not found."})
			return
		}
		RenderErrorPage(c, http.StatusInternalServerError, "Voucher Error",
			[]string{"Could not generate the voucher. Please try again."})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
