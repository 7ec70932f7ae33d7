package dto

type MapResponse struct {
	ID           string      `json:"id"`
	ShortName    string      `json:"short_name"`
	Environments []string    `json:"environments"`
	Orientation  string      `json:"orientation"`
	Allies       string      `json:"allies"`
	Axis         string      `json:"axis"`
	Objectives   [5][3]string `json:"objectives"`
}

type LayoutsResponse struct {
	Layouts []string `json:"layouts"`
}
