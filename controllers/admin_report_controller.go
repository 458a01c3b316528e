package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
)

type couponReportSummary struct {
	Total   int
	Active  int
	Expired int
}

func loadCouponReport() ([]models.Coupon, couponReportSummary, error) {
	var coupons []models.Coupon
	if err := config.DB.Order("created_at DESC").Find(&coupons).Error; err != nil {
		return nil, couponReportSummary{}, err
	}

	var summary couponReportSummary
	summary.Total = len(coupons)
	for _, coupon := range coupons {
		if coupon.IsExpired() {
			summary.Expired++
		} else if coupon.IsActive {
			summary.Active++
		}
	}
	return coupons, summary, nil
}

// DownloadCouponReportExcel exports the coupon catalog as an Excel sheet
func DownloadCouponReportExcel(c *gin.Context) {
	utils.LogInfo("DownloadCouponReportExcel called")

	coupons, summary, err := loadCouponReport()
	if err != nil {
		utils.LogError("Failed to fetch coupons: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d coupons for Excel report", len(coupons))

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Coupon Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	companyRow := sheet.AddRow()
	companyRow.AddCell().SetString("MODAMART - Coupon Report")
	companyRow = sheet.AddRow()
	companyRow.AddCell().SetString("Generated: " + time.Now().Format("2006-01-02 15:04"))
	sheet.AddRow() // spacing

	headers := []string{"ID", "Code", "Discount %", "Expiration", "Active", "Created"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, coupon := range coupons {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(coupon.ID))
		row.AddCell().SetString(coupon.Code)
		row.AddCell().SetFloat(coupon.Discount)
		row.AddCell().SetString(couponExpirationLabel(&coupon))
		row.AddCell().SetString(fmt.Sprintf("%t", coupon.IsActive))
		row.AddCell().SetString(coupon.CreatedAt.Format("2006-01-02 15:04"))
	}

	sheet.AddRow() // spacing

	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Coupons", fmt.Sprintf("%d", summary.Total)},
		{"Active", fmt.Sprintf("%d", summary.Active)},
		{"Expired", fmt.Sprintf("%d", summary.Expired)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=coupon_report.xlsx")
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated coupon Excel report")
}

// DownloadCouponReportPDF exports the coupon catalog as a PDF
func DownloadCouponReportPDF(c *gin.Context) {
	utils.LogInfo("DownloadCouponReportPDF called")

	coupons, summary, err := loadCouponReport()
	if err != nil {
		utils.LogError("Failed to fetch coupons: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d coupons for PDF report", len(coupons))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, "MODAMART - Coupon Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	headers := []string{"ID", "Code", "Discount %", "Expiration", "Active", "Created"}
	colWidths := []float64{15, 40, 25, 35, 20, 40}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range headers {
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	fill := false
	for _, coupon := range coupons {
		pdf.SetFillColor(245, 245, 245)
		if fill {
			pdf.SetFillColor(230, 240, 255)
		}
		fill = !fill
		pdf.CellFormat(colWidths[0], 8, fmt.Sprintf("%d", coupon.ID), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[1], 8, coupon.Code, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[2], 8, fmt.Sprintf("%.2f", coupon.Discount), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[3], 8, couponExpirationLabel(&coupon), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[4], 8, fmt.Sprintf("%t", coupon.IsActive), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[5], 8, coupon.CreatedAt.Format("2006-01-02 15:04"), "1", 0, "C", fill, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 13)
	pdf.SetFillColor(220, 230, 250)
	pdf.CellFormat(70, 10, "Summary", "1", 0, "C", true, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 11)
	pdf.SetFillColor(255, 255, 255)
	pdf.CellFormat(50, 8, "Total Coupons", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%d", summary.Total), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.CellFormat(50, 8, "Active", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%d", summary.Active), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.CellFormat(50, 8, "Expired", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%d", summary.Expired), "1", 0, "R", false, 0, "")

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=coupon_report.pdf")
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
		utils.InternalServerError(c, "Failed to write PDF file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated coupon PDF report")
}
