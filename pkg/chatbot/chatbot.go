// Package chatbot is a state-free keyword classifier for the support chat.
// It keeps no context across turns; Reply is a pure function of its input.
package chatbot

import "strings"

type Intent string

const (
	IntentGreeting     Intent = "greeting"
	IntentBooking      Intent = "booking"
	IntentPricing      Intent = "pricing"
	IntentAvailability Intent = "availability"
	IntentLocation     Intent = "location"
	IntentContact      Intent = "contact"
	IntentThanks       Intent = "thanks"
	IntentDefault      Intent = "default"
)

type pattern struct {
	intent   Intent
	keywords []string
}

// Evaluation order matters: the first intent with a matching keyword wins.
var patterns = []pattern{
	{IntentGreeting, []string{"hello", "hi", "hey", "good morning", "good afternoon"}},
	{IntentBooking, []string{"book", "booking", "reserve", "rent"}},
	{IntentPricing, []string{"price", "cost", "how much", "rate"}},
	{IntentAvailability, []string{"available", "in stock", "have cars"}},
	{IntentLocation, []string{"location", "where", "address"}},
	{IntentContact, []string{"contact", "phone", "email", "support"}},
	{IntentThanks, []string{"thank you", "thanks", "appreciate"}},
}

var responses = map[Intent]string{
	IntentGreeting:     "Hello! Welcome to Your Car! rental service. How can I help you today?",
	IntentBooking:      "You can book cars through our booking page. Would you like me to redirect you there?",
	IntentPricing:      "Our prices start from $30 per day. The exact price depends on the car model and rental duration.",
	IntentAvailability: "We have various cars available! Check our booking page to see all available vehicles.",
	IntentLocation:     "We have multiple pickup locations across the city. You can choose your preferred location during booking.",
	IntentContact:      "You can reach us at support@yourcar.com or call +1-555-0123. Visit our contact page for more details!",
	IntentThanks:       "You're welcome! Let me know if you need any other assistance.",
	IntentDefault:      "I'm here to help with car rentals! You can ask about booking, prices, availability, or contact information.",
}

// Classify lower-cases the message and returns the first intent whose keyword
// set contains a substring of it, or IntentDefault.
func Classify(message string) Intent {
	message = strings.ToLower(message)
	for _, p := range patterns {
		for _, kw := range p.keywords {
			if strings.Contains(message, kw) {
				return p.intent
			}
		}
	}
	return IntentDefault
}

// Reply returns the canned response for the classified intent.
func Reply(message string) string {
	return responses[Classify(message)]
}
