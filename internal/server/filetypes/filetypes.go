// Package filetypes maps file extensions to viewer categories. The tables
// here are configuration data: they are served verbatim to clients over the
// config endpoint, so client-side viewer selection always mirrors the
// server's classification.
package filetypes

// Category names a viewer behavior for a file extension.
type Category string

const (
	CategoryImage      Category = "image"
	CategoryCode       Category = "code"
	CategoryPDF        Category = "pdf"
	CategoryWord       Category = "word"
	CategoryExcel      Category = "excel"
	CategoryPowerPoint Category = "powerpoint"
	CategoryDefault    Category = "default"
	CategoryFolder     Category = "folder"
)

// classifyOrder fixes the priority when an extension could match more than
// one table: first category listed wins.
var classifyOrder = []Category{
	CategoryImage,
	CategoryCode,
	CategoryPDF,
	CategoryWord,
	CategoryExcel,
	CategoryPowerPoint,
}

var tables = map[Category][]string{
	CategoryImage: {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp", ".svg", ".ico"},
	CategoryCode: {
		".js", ".jsx", ".ts", ".tsx", ".json", ".html", ".css", ".scss",
		".py", ".java", ".cpp", ".c", ".h", ".go", ".rs", ".php",
		".rb", ".sh", ".bash", ".yaml", ".yml", ".xml", ".sql", ".md", ".txt",
	},
	CategoryPDF:        {".pdf"},
	CategoryWord:       {".doc", ".docx"},
	CategoryExcel:      {".xls", ".xlsx", ".csv"},
	CategoryPowerPoint: {".ppt", ".pptx"},
}

// Tables returns the category -> extension lists served to clients.
// The returned map must not be modified.
func Tables() map[Category][]string {
	return tables
}

// Extensions returns the extension list for a single category.
func Extensions(c Category) []string {
	return tables[c]
}

// Classify maps a lower-cased extension (leading dot included) to its
// category. Unrecognized extensions classify as CategoryDefault.
func Classify(ext string) Category {
	for _, c := range classifyOrder {
		for _, e := range tables[c] {
			if e == ext {
				return c
			}
		}
	}
	return CategoryDefault
}

// IsOffice reports whether the category is one of the office-document
// subtypes handled by the external office viewer.
func IsOffice(c Category) bool {
	return c == CategoryWord || c == CategoryExcel || c == CategoryPowerPoint
}
