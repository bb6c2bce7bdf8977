package dto

// DeleteAccountReq represents the request body for the /api/delete-account
// endpoint. Deletion re-authenticates with the account password.
type DeleteAccountReq struct {
	UserID   uint   `json:"userId" binding:"required"`
	Password string `json:"password" binding:"required"`
}
