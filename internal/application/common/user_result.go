package common

type UserResult struct {
	Id       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	ZipCode  string `json:"zip_code,omitempty"`
}
