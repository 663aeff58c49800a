package models

type HealthTip struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

var HealthTips = []HealthTip{
	{Title: "Stay Hydrated", Content: "Drink at least 8 glasses of water a day to keep your body functioning optimally. Water helps regulate body temperature, transport nutrients, and remove waste."},
	{Title: "Eat a Balanced Diet", Content: "Incorporate a variety of fruits, vegetables, lean proteins, and whole grains into your meals. A balanced diet provides essential nutrients for energy and health."},
	{Title: "Exercise Regularly", Content: "Aim for at least 30 minutes of moderate physical activity most days of the week. Regular exercise boosts your immune system and improves mood."},
	{Title: "Get Enough Sleep", Content: "Most adults need 7-9 hours of quality sleep per night. Sleep is crucial for physical and mental recovery, memory consolidation, and overall health."},
	{Title: "Manage Stress", Content: "Practice stress-reducing activities like meditation, deep breathing, yoga, or spending time in nature. Chronic stress can negatively impact your health."},
	{Title: "Get Some Sunlight", Content: "Spend a short amount of time in the sun each day to help your body produce Vitamin D, which is essential for bone health and immune function. Don't forget sunscreen!"},
}
