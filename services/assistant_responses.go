// services/assistant_responses.go
package services

// Canned response pools. Chat falls back to these when no language model
// is configured; the reminder, motivation and suggestion flows always use
// them.

var chatResponses = []string{
	"I'm here to help you stay on track with your fitness goals! How can I assist you today?",
	"Great question! Let me help you with that. What specific area would you like to focus on?",
	"I'm always here to support your fitness journey. What's on your mind?",
	"That's a fantastic goal! I can help you create a plan to achieve it.",
	"I understand your concern. Let's work together to find a solution that works for you.",
	"Your dedication to fitness is inspiring! How can I help you today?",
	"I'm here to provide guidance and motivation. What would you like to discuss?",
	"Every step counts towards your fitness goals! What can I help you with?",
}

var hydrationReminders = []string{
	"💧 Time for a hydration break! You haven't logged water in a while. How about drinking a glass now?",
	"🚰 Your body needs water to perform at its best! Let's log some hydration.",
	"💦 Staying hydrated is key to your fitness success. Time for a water break!",
	"🥤 Don't forget to drink water! Your muscles need hydration to recover properly.",
	"💧 Hydration check! Let's make sure you're getting enough water today.",
}

var motivationMissed = []string{
	"💪 Don't worry about missing today's workout! Tomorrow is a fresh start. What matters is getting back on track.",
	"🌟 Everyone has off days! The important thing is not giving up. You've got this!",
	"🔥 Missing one workout doesn't define your journey. Let's plan something achievable for tomorrow!",
	"⚡ Life happens, and that's okay! Your consistency over time is what counts. Ready to bounce back?",
	"🎯 One missed workout is just a small detour. Your fitness journey is a marathon, not a sprint!",
}

var motivationCompleted = []string{
	"🎉 Amazing work completing your workout! You're building incredible momentum!",
	"💪 Fantastic job! Every completed workout brings you closer to your goals!",
	"🌟 You crushed it today! Your dedication is truly inspiring!",
	"🔥 Outstanding effort! You're proving to yourself that you can do anything!",
	"⚡ Incredible work! You're building habits that will transform your life!",
}

var suggestionsShort = []string{
	"🏃 Quick 15-minute HIIT session: 30 seconds work, 15 seconds rest for 6 exercises",
	"💪 Bodyweight circuit: 10 push-ups, 15 squats, 20 jumping jacks, repeat 3 times",
	"🧘 10-minute yoga flow focusing on flexibility and breathing",
	"⚡ Stair climbing: 10 minutes of walking/running stairs for cardio",
}

var suggestionsEquipment = []string{
	"🏋️ Dumbbell workout: Bicep curls, shoulder press, chest press, rows",
	"🎯 Resistance band routine: Full body workout with bands",
	"⚖️ Kettlebell session: Swings, goblet squats, Turkish get-ups",
	"🏃 Treadmill intervals: Alternate between walking and jogging",
}

var suggestionsBodyweight = []string{
	"💪 No equipment needed: Push-ups, squats, lunges, planks, burpees",
	"🤸 Bodyweight strength: Mountain climbers, wall sits, tricep dips",
	"🧘 Yoga flow: Sun salutations and basic poses for flexibility",
	"🏃 Cardio blast: Jumping jacks, high knees, butt kicks, dance moves",
}
