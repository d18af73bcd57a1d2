package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/mosisn/onlineshop/models"
)

// ImportProductsFromExcel bulk-loads catalog rows from an uploaded .xlsx
// file using the same column layout as the export. Rows with an ID update
// the existing product; rows without one create a new product with a
// derived slug. Rows that fail validation or slug derivation are counted
// as skipped, never partially written.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		// Columns follow productSheetColumns, so an export round-trips.
		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			description := get(3)
			statusStr := get(4)
			priceStr := get(5)
			discountStr := get(6)
			stockStr := get(7)
			image := get(8)
			categoryIDStr := get(9)

			price, err := decimal.NewFromString(priceStr)
			if name == "" || err != nil || price.LessThanOrEqual(decimal.Zero) {
				skippedCount++
				continue
			}

			var discount *decimal.Decimal
			if discountStr != "" {
				d, err := decimal.NewFromString(discountStr)
				if err != nil || d.IsNegative() {
					skippedCount++
					continue
				}
				discount = &d
			}

			stock := 0
			if stockStr != "" {
				parsed, err := strconv.Atoi(stockStr)
				if err != nil || parsed < 0 {
					skippedCount++
					continue
				}
				stock = parsed
			}

			status := models.ProductStatusActive
			if statusStr != "" {
				switch models.ProductStatus(statusStr) {
				case models.ProductStatusActive, models.ProductStatusDraft,
					models.ProductStatusArchived, models.ProductStatusSoldOut:
					status = models.ProductStatus(statusStr)
				default:
					skippedCount++
					continue
				}
			}

			var categoryIDs []uint
			for _, part := range strings.Split(categoryIDStr, ",") {
				if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
					categoryIDs = append(categoryIDs, uint(id))
				}
			}
			categories, err := findCategories(db, categoryIDs)
			if err != nil {
				skippedCount++
				continue
			}

			// Update path: row carries the product ID.
			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if err := db.Preload("Categories").First(&existing, id).Error; err == nil {
						existing.Name = name
						existing.Description = description
						existing.Status = status
						existing.Price = price
						existing.Discount = discount
						existing.Stock = stock
						existing.Image = image

						if err := db.Model(&existing).Association("Categories").Replace(categories); err != nil {
							skippedCount++
							continue
						}
						if err := db.Save(&existing).Error; err == nil {
							updatedCount++
							continue
						}
					}
				}
				skippedCount++
				continue
			}

			// Create path: derive and uniqueness-check the slug.
			slug, err := resolveSlug(db, &models.Product{}, name, get(2))
			if err != nil {
				skippedCount++
				continue
			}

			product := models.Product{
				Categories:  categories,
				Name:        name,
				Image:       image,
				Description: description,
				Slug:        slug,
				Status:      status,
				Price:       price,
				Discount:    discount,
				Stock:       stock,
			}
			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
