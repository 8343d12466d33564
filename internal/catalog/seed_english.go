package catalog

var englishTexts = map[string]string{
	// Sections
	"section.intro.title":            "Mental Health Assessment",
	"section.intro.description":      "This assessment will help us understand your current mental health status. It takes about 5-10 minutes to complete. Your answers are confidential and will be used to provide personalized recommendations.",
	"section.anxiety.title":          "Anxiety Assessment",
	"section.anxiety.description":    "The following questions relate to anxiety symptoms you may have experienced in the past two weeks.",
	"section.depression.title":       "Depression Assessment",
	"section.depression.description": "The following questions relate to depressive symptoms you may have experienced in the past two weeks.",
	"section.stress.title":           "Stress Assessment",
	"section.stress.description":     "The following questions relate to stress levels you may have experienced in the past two weeks.",
	"section.sleep.title":            "Sleep Patterns",
	"section.sleep.description":      "The following questions relate to your sleep patterns over the past two weeks.",
	"section.social.title":           "Social Relationships",
	"section.social.description":     "The following questions relate to your social relationships and support system.",
	"section.emergency.title":        "Crisis Assessment",
	"section.emergency.description":  "These questions help us determine if you need immediate support. Please answer honestly.",
	"section.completion.title":       "Assessment Complete",
	"section.completion.description": "Thank you for completing the assessment. Your responses will help us provide personalized recommendations for your mental health journey.",

	// Sectional questions
	"anxiety_1":    "How often have you been feeling nervous, anxious, or on edge?",
	"anxiety_2":    "How often have you not been able to stop or control worrying?",
	"anxiety_3":    "How often have you had trouble relaxing?",
	"depression_1": "How often have you had little interest or pleasure in doing things?",
	"depression_2": "How often have you been feeling down, depressed, or hopeless?",
	"depression_3": "How often have you had trouble falling or staying asleep, or sleeping too much?",
	"stress_1":     "How often have you found it difficult to cope with all the things you had to do?",
	"stress_2":     "How often have you felt irritable or angry?",
	"stress_3":     "How often have you felt overwhelmed?",
	"sleep_1":      "How would you rate your overall sleep quality?",
	"sleep_2":      "How often have you had trouble falling asleep or staying asleep?",
	"sleep_3":      "How rested do you feel when you wake up in the morning?",
	"social_1":     "How satisfied are you with your relationships with friends and family?",
	"social_2":     "How often do you feel lonely or isolated?",
	"social_3":     "How comfortable do you feel reaching out for support when needed?",
	"emergency_1":  "In the past two weeks, have you had thoughts that you would be better off dead or of hurting yourself in some way?",
	"emergency_2":  "Do you currently have a plan to harm yourself or end your life?",

	// Scale labels
	"scale.1":  "Not at all",
	"scale.2":  "Rarely",
	"scale.3":  "Sometimes",
	"scale.4":  "Often",
	"scale.5":  "Very frequently",
	"scale.6":  "Almost constantly",
	"scale.7":  "Constantly",
	"scale.8":  "Severely",
	"scale.9":  "Extremely",
	"scale.10": "Completely",

	// Crisis overlay
	"crisis.title":             "Important Notice",
	"crisis.message":           "Based on your responses, we recommend you speak with someone right away. Here are resources that can help you immediately:",
	"crisis.continue":          "You can continue with the assessment, but please reach out for help as soon as possible.",
	"crisis.lifeline.label":    "National Suicide Prevention Lifeline",
	"crisis.lifeline.contact":  "988 or 1-800-273-8255",
	"crisis.textline.label":    "Crisis Text Line",
	"crisis.textline.contact":  "Text HOME to 741741",
	"crisis.emergency.label":   "Emergency Services",
	"crisis.emergency.contact": "Call 911 or go to your nearest emergency room",
	"crisis.ambulance.label":   "Medical emergency (India)",
	"crisis.ambulance.contact": "Call 108",

	// Categories
	"category.skin":    "Skin",
	"category.chest":   "Chest & Breathing",
	"category.head":    "Head",
	"category.stomach": "Stomach & Digestion",

	"skin_1":  "How itchy is your skin?",
	"skin_2":  "How red or inflamed is the affected area?",
	"skin_3":  "How dry, flaky or cracked is your skin?",
	"skin_4":  "How oily does your skin feel?",
	"skin_5":  "How much has a rash spread since it appeared?",
	"skin_6":  "Do you have blisters or oozing patches?",
	"skin_7":  "Do you have thick, scaly or silvery patches?",
	"skin_8":  "How many pimples or inflamed bumps do you have?",
	"skin_9":  "How much burning or stinging do you feel?",
	"skin_10": "How many blackheads or whiteheads do you have?",

	"chest_1":  "How strong is any chest pain or tightness?",
	"chest_2":  "How short of breath do you feel?",
	"chest_3":  "How persistent is your cough?",
	"chest_4":  "How often do you hear wheezing when you breathe?",
	"chest_5":  "How often do you feel your heart racing or pounding?",
	"chest_6":  "How high is your fever?",
	"chest_7":  "How much mucus or phlegm are you coughing up?",
	"chest_8":  "How much does it hurt to take a deep breath?",
	"chest_9":  "How tired do you get with light activity?",
	"chest_10": "How swollen are your legs or ankles?",

	"head_1":  "How intense is your headache?",
	"head_2":  "Is the pain throbbing on one side of your head?",
	"head_3":  "How sensitive are you to light or sound?",
	"head_4":  "How nauseous do you feel?",
	"head_5":  "How much pressure do you feel around your forehead or eyes?",
	"head_6":  "How blocked or runny is your nose?",
	"head_7":  "How often do you feel dizzy or feel the room spinning?",
	"head_8":  "How tense are your neck and shoulders?",
	"head_9":  "How blurred is your vision?",
	"head_10": "How hard is it to concentrate?",

	"stomach_1":  "How strong is your abdominal pain?",
	"stomach_2":  "How bloated do you feel?",
	"stomach_3":  "How often do you have heartburn?",
	"stomach_4":  "How nauseous do you feel?",
	"stomach_5":  "How often have you been vomiting?",
	"stomach_6":  "How often have you had loose stools or diarrhea?",
	"stomach_7":  "How constipated have you been?",
	"stomach_8":  "How much has your appetite dropped?",
	"stomach_9":  "How much pain do you get after fatty meals?",
	"stomach_10": "How often do you taste sour fluid in your throat?",

	// Conditions
	"condition.skin.acne":               "Acne",
	"condition.skin.eczema":             "Eczema",
	"condition.skin.psoriasis":          "Psoriasis",
	"condition.skin.contact_dermatitis": "Contact Dermatitis",
	"condition.chest.asthma":            "Asthma",
	"condition.chest.bronchitis":        "Bronchitis",
	"condition.chest.pneumonia":         "Pneumonia",
	"condition.chest.heart_strain":      "Heart Strain",
	"condition.head.migraine":           "Migraine",
	"condition.head.tension_headache":   "Tension Headache",
	"condition.head.sinusitis":          "Sinusitis",
	"condition.head.vertigo":            "Vertigo",
	"condition.stomach.gerd":            "Acid Reflux (GERD)",
	"condition.stomach.gastroenteritis": "Gastroenteritis",
	"condition.stomach.ibs":             "Irritable Bowel Syndrome",
	"condition.stomach.gallbladder":     "Gallbladder Disease",
}
