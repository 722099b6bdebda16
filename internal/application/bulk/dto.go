package bulk

// Spreadsheet sheet names used by the desktop UI for the two record kinds.
// The engine itself consumes named row slices; these constants only pin the
// tabular exchange contract for callers that read or write workbook files.
const (
	SheetCategories = "Danh mục"
	SheetProducts   = "Danh sách sản phẩm"
)

// Column labels of the tabular exchange shape, in fixed order
const (
	ColumnCategoryName = "Tên danh mục"

	ColumnProductName    = "Tên sản phẩm"
	ColumnBarcode        = "Mã vạch"
	ColumnRetailPrice    = "Giá lẻ"
	ColumnWholesalePrice = "Giá sỉ"
	ColumnCategory       = "Danh mục"
)

// CategoryRow is one category record of the tabular exchange shape
type CategoryRow struct {
	Name string `json:"name"`
}

// ProductRow is one product record of the tabular exchange shape.
// Prices travel as strings because spreadsheet cells arrive untyped;
// the import engine parses and validates them per row.
type ProductRow struct {
	Name           string `json:"name"`
	Barcode        string `json:"barcode"`
	RetailPrice    string `json:"retail_price"`
	WholesalePrice string `json:"wholesale_price"`
	CategoryName   string `json:"category_name"`
}

// ImportRequest carries the two record sequences of one import batch.
// Categories are applied strictly before products so product rows can
// reference categories created in the same batch.
type ImportRequest struct {
	Categories []CategoryRow `json:"categories"`
	Products   []ProductRow  `json:"products"`
}

// KindReport aggregates the outcome for one record kind
type KindReport struct {
	Success int      `json:"success"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

// ImportReport is the result of one import batch. Error strings preserve
// input row order; a failed row never aborts the batch.
type ImportReport struct {
	Categories KindReport `json:"categories"`
	Products   KindReport `json:"products"`
}

// ExportData is the catalog projected into the tabular exchange shape,
// field-for-field symmetric with ImportRequest
type ExportData struct {
	Categories []CategoryRow `json:"categories"`
	Products   []ProductRow  `json:"products"`
}
