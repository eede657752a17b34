package response

type UserAuthResponse struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Token  string `json:"token"`
}

type CounselorAuthResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}
