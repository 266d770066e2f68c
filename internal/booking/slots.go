package booking

// TimeSlots are the appointment times offered on the scheduling step.
var TimeSlots = []string{"10:00 AM", "11:30 AM", "01:00 PM", "02:30 PM", "04:00 PM", "05:30 PM"}
