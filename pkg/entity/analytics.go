package entity

// Analytics is derived on every request from the user's other records.
type Analytics struct {
	From                Date                 `json:"from"`
	To                  Date                 `json:"to"`
	TotalStudyHours     float64              `json:"total_study_hours"`
	TotalTasksCompleted int                  `json:"total_tasks_completed"`
	TotalQuizzesTaken   int                  `json:"total_quizzes_taken"`
	AverageQuizScore    float64              `json:"average_quiz_score"`
	CurrentStreak       int                  `json:"current_streak"`
	WeeklyGoalProgress  float64              `json:"weekly_goal_progress"`
	SubjectPerformance  []SubjectPerformance `json:"subject_performance"`
	DailyProgress       []DayProgress        `json:"weekly_progress"`
	WeakAreas           []TopicScore         `json:"weak_areas"`
	StrongAreas         []TopicScore         `json:"strong_areas"`
}

type SubjectPerformance struct {
	Subject          string  `json:"subject"`
	TotalStudyHours  float64 `json:"total_study_hours"`
	QuizzesTaken     int     `json:"quizzes_taken"`
	AverageQuizScore float64 `json:"average_quiz_score"`
}

type DayProgress struct {
	Date           Date    `json:"date"`
	Day            string  `json:"day"`
	StudyHours     float64 `json:"study_hours"`
	TasksCompleted int     `json:"tasks_completed"`
	QuizzesTaken   int     `json:"quizzes_taken"`
}

// TopicScore is the share of correctly answered questions on one topic.
type TopicScore struct {
	Subject  string  `json:"subject"`
	Topic    string  `json:"topic"`
	Score    float64 `json:"score"`
	Answered int     `json:"answered"`
}
