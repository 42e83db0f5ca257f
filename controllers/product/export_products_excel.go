package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/foresthealth/storefront-api/models"
	"github.com/foresthealth/storefront-api/store"
)

// ExportProductsToExcel streams the catalog as an .xlsx download. Admin only.
func ExportProductsToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.Available() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Store unavailable"})
			return
		}

		var products []models.Product
		if err := s.FindAll(c.Request.Context(), store.Products, &products); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Title", "Description", "Price", "Category", "Image", "Badge", "InStock"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID.Hex())
			row.AddCell().SetValue(p.Title)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(p.Badge)
			row.AddCell().SetValue(p.InStock)
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
