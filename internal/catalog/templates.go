package catalog

// SentimentKey enumera las claves reconocidas por extend-reply.
type SentimentKey int

const (
	SentimentUnknown SentimentKey = iota
	SentimentYes
	SentimentNo
	SentimentMaybe
	SentimentHelp
	SentimentThanks
)

func parseSentiment(key string) SentimentKey {
	switch key {
	case "yes":
		return SentimentYes
	case "no":
		return SentimentNo
	case "maybe":
		return SentimentMaybe
	case "help":
		return SentimentHelp
	case "thanks":
		return SentimentThanks
	default:
		return SentimentUnknown
	}
}

var extendReplyTemplates = map[SentimentKey][]string{
	SentimentYes: {
		"Yes, I'd be happy to help with that.",
		"Absolutely, that sounds great!",
		"Yes, count me in for this.",
		"Definitely, I'm interested in participating.",
	},
	SentimentNo: {
		"No, I won't be able to make it.",
		"Unfortunately, I can't participate in this.",
		"No thank you, I'll have to pass on this one.",
		"I appreciate the offer, but no thanks.",
	},
	SentimentMaybe: {
		"I'm not sure yet, can I get back to you?",
		"Maybe, let me check my schedule first.",
		"I'm tentatively interested, but need more details.",
		"Possibly, depends on a few factors.",
	},
	SentimentHelp: {
		"I could use some assistance with this.",
		"Would you mind helping me out?",
		"I'd appreciate some help if you have time.",
		"Could you lend me a hand with this?",
	},
	SentimentThanks: {
		"Thank you so much for your help!",
		"I really appreciate everything you've done.",
		"Thanks, that means a lot to me.",
		"I'm grateful for your support.",
	},
}

// Las plantillas de fallback llevan la entrada literal entre comillas.
var extendReplyFallback = []string{
	"I understand what you're saying about \"%s\".",
	"That's an interesting point about \"%s\".",
	"Thanks for bringing up \"%s\".",
	"I'd like to discuss \"%s\" further.",
}

// BackgroundTopic es el tema detectado en la pregunta.
type BackgroundTopic int

const (
	TopicOther BackgroundTopic = iota
	TopicPets
	TopicHobbies
)

// backgroundSet identifica cada conjunto fijo de respuestas de background-info.
type backgroundSet int

const (
	setGeneric backgroundSet = iota
	setDog
	setCat
	setNoPets
	setReading
	setMusic
	setHobbiesGeneric
)

var backgroundResponses = map[backgroundSet][]string{
	setDog: {
		"Yes, I have a wonderful dog who brings so much joy to my life.",
		"I do! My dog is my best companion and always keeps me active.",
		"Absolutely, my dog is like family to me.",
	},
	setCat: {
		"Yes, I have a cat who's independent but very loving.",
		"I do! My cat is the perfect companion - low maintenance but affectionate.",
		"Absolutely, my cat brings such calm energy to my home.",
	},
	setNoPets: {
		"No, I don't have any pets right now.",
		"Not currently, but I love animals.",
		"No pets at the moment, but I'm considering it.",
	},
	setReading: {
		"I love reading, especially fiction and biographies.",
		"Reading is one of my favorite pastimes - I'm always in the middle of a good book.",
		"Yes, I'm an avid reader. Currently working through my reading list.",
	},
	setMusic: {
		"I'm really into music - both listening and playing when I can.",
		"Music is a huge part of my life. I love discovering new artists.",
		"Absolutely! Music helps me relax and express myself.",
	},
	setHobbiesGeneric: {
		"I have several hobbies that keep me busy and engaged.",
		"I enjoy various activities depending on my mood and energy.",
		"I like to try different things and explore new interests.",
	},
	setGeneric: {
		"Based on what I've shared about myself, I'd say...",
		"Given my background, I think...",
		"From my experience, I would say...",
	},
}

// VocabularyKey enumera las palabras reconocidas por word-to-request.
type VocabularyKey int

const (
	VocabularyUnknown VocabularyKey = iota
	VocabularyWater
	VocabularyHelp
	VocabularyBathroom
	VocabularyFood
	VocabularyRest
)

func parseVocabulary(key string) VocabularyKey {
	switch key {
	case "water":
		return VocabularyWater
	case "help":
		return VocabularyHelp
	case "bathroom":
		return VocabularyBathroom
	case "food":
		return VocabularyFood
	case "rest":
		return VocabularyRest
	default:
		return VocabularyUnknown
	}
}

var wordToRequestTemplates = map[VocabularyKey][]string{
	VocabularyWater: {
		"Could I please have some water?",
		"Would you mind getting me a glass of water?",
		"I'd appreciate some water when you have a moment.",
	},
	VocabularyHelp: {
		"Could you please help me with something?",
		"I could use some assistance if you're available.",
		"Would you mind giving me a hand?",
	},
	VocabularyBathroom: {
		"Could you please help me get to the bathroom?",
		"I need assistance getting to the restroom.",
		"Would you mind helping me with a bathroom break?",
	},
	VocabularyFood: {
		"Could I have something to eat, please?",
		"I'm feeling hungry - could you help me with food?",
		"Would it be possible to get something to eat?",
	},
	VocabularyRest: {
		"I'd like to rest for a bit, please.",
		"Could we take a break? I need to rest.",
		"I'm feeling tired and would like to lie down.",
	},
}

var wordToRequestFallback = []string{
	"Could you help me with %s, please?",
	"I need assistance with %s.",
	"Would you mind helping me get %s?",
}

var sampleQuestions = []string{
	"Do you have any pets?",
	"What are your hobbies?",
	"Tell me about yourself",
	"What do you like to do for fun?",
}

var exampleWords = []string{"water", "help", "bathroom", "food", "rest", "medicine", "comfort"}
