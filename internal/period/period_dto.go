package period

type CreatePeriodRequest struct {
	PeriodName string `json:"period_name" binding:"required"`
	StartDate  string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" binding:"required,datetime=2006-01-02"`
}

type PeriodResponse struct {
	ID         string `json:"id"`
	PeriodName string `json:"period_name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
}
