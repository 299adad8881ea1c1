package googlesheets

// ValueRange значения диапазона ячеек (Sheets API v4)
type ValueRange struct {
	Range  string     `json:"range,omitempty"`
	Values [][]string `json:"values"`
}

// spreadsheetResponse усечённый ответ spreadsheets.get (только названия листов)
type spreadsheetResponse struct {
	Sheets []struct {
		Properties struct {
			Title string `json:"title"`
		} `json:"properties"`
	} `json:"sheets"`
}

// ErrorResponse модель ошибки Google API
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
