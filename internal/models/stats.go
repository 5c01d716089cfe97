package models

type DeletedMessageStats struct {
	TotalDeleted    int     `json:"total_deleted"`
	TodayDeleted    int     `json:"today_deleted"`
	ThisWeekDeleted int     `json:"this_week_deleted"`
	MostActiveChat  *string `json:"most_active_chat"`
}
