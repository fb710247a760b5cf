package tds

type CreateTDSRequest struct {
	PartyName string `json:"partyName" binding:"required"`
	PanCardNo string `json:"panCardNo" binding:"required"`
	Refrence  string `json:"refrence"`
}

type UpdateTDSRequest struct {
	PartyName string `json:"partyName" binding:"required"`
	PanCardNo string `json:"panCardNo" binding:"required"`
	Refrence  string `json:"refrence"`
}

type TDSResponse struct {
	TDSID     int64  `json:"tdsId"`
	PartyName string `json:"partyName"`
	PanCardNo string `json:"panCardNo"`
	Refrence  string `json:"refrence"`
}
