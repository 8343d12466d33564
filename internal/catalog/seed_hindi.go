package catalog

var hindiTexts = map[string]string{
	// Sections
	"section.intro.title":            "मानसिक स्वास्थ्य मूल्यांकन",
	"section.intro.description":      "यह मूल्यांकन आपके वर्तमान मानसिक स्वास्थ्य की स्थिति को समझने में हमारी मदद करेगा। इसे पूरा करने में लगभग 5-10 मिनट लगेंगे। आपके उत्तर गोपनीय हैं और व्यक्तिगत सिफारिशें प्रदान करने के लिए उपयोग किए जाएंगे।",
	"section.anxiety.title":          "चिंता मूल्यांकन",
	"section.anxiety.description":    "निम्नलिखित प्रश्न पिछले दो सप्ताह में आपके द्वारा अनुभव किए गए चिंता के लक्षणों से संबंधित हैं।",
	"section.depression.title":       "अवसाद मूल्यांकन",
	"section.depression.description": "निम्नलिखित प्रश्न पिछले दो सप्ताह में आपके द्वारा अनुभव किए गए अवसाद के लक्षणों से संबंधित हैं।",
	"section.stress.title":           "तनाव मूल्यांकन",
	"section.stress.description":     "निम्नलिखित प्रश्न पिछले दो सप्ताह में आपके द्वारा अनुभव किए गए तनाव के स्तर से संबंधित हैं।",
	"section.sleep.title":            "नींद के पैटर्न",
	"section.sleep.description":      "निम्नलिखित प्रश्न पिछले दो सप्ताह में आपकी नींद के पैटर्न से संबंधित हैं।",
	"section.social.title":           "सामाजिक संबंध",
	"section.social.description":     "निम्नलिखित प्रश्न आपके सामाजिक संबंधों और सहायता प्रणाली से संबंधित हैं।",
	"section.emergency.title":        "संकट मूल्यांकन",
	"section.emergency.description":  "ये प्रश्न हमें यह निर्धारित करने में मदद करते हैं कि क्या आपको तत्काल सहायता की आवश्यकता है। कृपया ईमानदारी से उत्तर दें।",
	"section.completion.title":       "मूल्यांकन पूर्ण",
	"section.completion.description": "मूल्यांकन पूरा करने के लिए धन्यवाद। आपके उत्तर हमें आपकी मानसिक स्वास्थ्य यात्रा के लिए व्यक्तिगत सिफारिशें प्रदान करने में मदद करेंगे।",

	// Sectional questions
	"anxiety_1":    "आप कितनी बार घबराए हुए, चिंतित या तनावग्रस्त महसूस करते हैं?",
	"anxiety_2":    "आप कितनी बार चिंता को रोकने या नियंत्रित करने में असमर्थ रहे हैं?",
	"anxiety_3":    "आप कितनी बार आराम करने में परेशानी महसूस करते हैं?",
	"depression_1": "आप कितनी बार चीजों में रुचि या आनंद महसूस करने में कमी महसूस करते हैं?",
	"depression_2": "आप कितनी बार उदास, निराश या निराशाजनक महसूस करते हैं?",
	"depression_3": "आप कितनी बार सोने में या सोते रहने में परेशानी महसूस करते हैं, या बहुत अधिक सोते हैं?",
	"stress_1":     "आप कितनी बार अपने सभी कार्यों को संभालने में कठिनाई महसूस करते हैं?",
	"stress_2":     "आप कितनी बार चिड़चिड़े या क्रोधित महसूस करते हैं?",
	"stress_3":     "आप कितनी बार अभिभूत महसूस करते हैं?",
	"sleep_1":      "आप अपनी समग्र नींद की गुणवत्ता को कैसे आंकते हैं?",
	"sleep_2":      "आप कितनी बार सोने में या सोते रहने में परेशानी महसूस करते हैं?",
	"sleep_3":      "सुबह उठने पर आप कितना आराम महसूस करते हैं?",
	"social_1":     "आप अपने दोस्तों और परिवार के साथ संबंधों से कितने संतुष्ट हैं?",
	"social_2":     "आप कितनी बार अकेला या अलग-थलग महसूस करते हैं?",
	"social_3":     "जरूरत पड़ने पर सहायता मांगने में आप कितना सहज महसूस करते हैं?",
	"emergency_1":  "पिछले दो सप्ताह में, क्या आपके मन में यह विचार आया है कि आप मर जाएं या खुद को नुकसान पहुंचाएं?",
	"emergency_2":  "क्या आपके पास वर्तमान में खुद को नुकसान पहुंचाने या जीवन समाप्त करने की योजना है?",

	// Scale labels
	"scale.1":  "बिल्कुल नहीं",
	"scale.2":  "कभी-कभी",
	"scale.3":  "कभी-कभार",
	"scale.4":  "अक्सर",
	"scale.5":  "बहुत अधिक",
	"scale.6":  "लगभग हमेशा",
	"scale.7":  "हमेशा",
	"scale.8":  "गंभीर रूप से",
	"scale.9":  "अत्यधिक",
	"scale.10": "पूरी तरह से",

	// Crisis overlay
	"crisis.title":             "महत्वपूर्ण सूचना",
	"crisis.message":           "आपके उत्तरों के आधार पर, हम अनुशंसा करते हैं कि आप तुरंत किसी से बात करें। यहां कुछ संसाधन हैं जो आपकी तुरंत मदद कर सकते हैं:",
	"crisis.continue":          "आप मूल्यांकन जारी रख सकते हैं, लेकिन कृपया जल्द से जल्द मदद लें।",
	"crisis.lifeline.label":    "राष्ट्रीय आत्महत्या रोकथाम हेल्पलाइन",
	"crisis.lifeline.contact":  "988 या 1-800-273-8255",
	"crisis.textline.label":    "संकट टेक्स्ट लाइन",
	"crisis.textline.contact":  "HOME को 741741 पर टेक्स्ट करें",
	"crisis.emergency.label":   "आपातकालीन सेवाएं",
	"crisis.emergency.contact": "911 पर कॉल करें या निकटतम आपातकालीन कक्ष में जाएं",
	"crisis.ambulance.label":   "मेडिकल आपातकाल",
	"crisis.ambulance.contact": "108 पर कॉल करें",

	// Categories
	"category.skin":    "त्वचा",
	"category.chest":   "छाती और सांस",
	"category.head":    "सिर",
	"category.stomach": "पेट और पाचन",

	"skin_1":  "आपकी त्वचा में कितनी खुजली है?",
	"skin_2":  "प्रभावित हिस्सा कितना लाल या सूजा हुआ है?",
	"skin_3":  "आपकी त्वचा कितनी सूखी, पपड़ीदार या फटी हुई है?",
	"skin_4":  "आपकी त्वचा कितनी तैलीय महसूस होती है?",
	"skin_5":  "दाने दिखने के बाद से कितने फैले हैं?",
	"skin_6":  "क्या आपको छाले या रिसते हुए धब्बे हैं?",
	"skin_7":  "क्या आपको मोटे, पपड़ीदार या चांदी जैसे धब्बे हैं?",
	"skin_8":  "आपको कितने मुंहासे या सूजे हुए दाने हैं?",
	"skin_9":  "आपको कितनी जलन या चुभन महसूस होती है?",
	"skin_10": "आपको कितने ब्लैकहेड्स या व्हाइटहेड्स हैं?",

	"chest_1":  "छाती में दर्द या जकड़न कितनी तेज है?",
	"chest_2":  "आपको कितनी सांस फूलने की समस्या है?",
	"chest_3":  "आपकी खांसी कितनी लगातार है?",
	"chest_4":  "सांस लेते समय आपको कितनी बार घरघराहट सुनाई देती है?",
	"chest_5":  "आपको कितनी बार दिल तेज धड़कता महसूस होता है?",
	"chest_6":  "आपका बुखार कितना तेज है?",
	"chest_7":  "खांसी में कितना बलगम निकलता है?",
	"chest_8":  "गहरी सांस लेने में कितना दर्द होता है?",
	"chest_9":  "हल्के काम से आप कितना थक जाते हैं?",
	"chest_10": "आपके पैरों या टखनों में कितनी सूजन है?",

	"head_1":  "आपका सिरदर्द कितना तेज है?",
	"head_2":  "क्या दर्द सिर के एक तरफ धड़कता है?",
	"head_3":  "आप रोशनी या आवाज़ के प्रति कितने संवेदनशील हैं?",
	"head_4":  "आपको कितनी मतली महसूस होती है?",
	"head_5":  "माथे या आंखों के आसपास कितना दबाव महसूस होता है?",
	"head_6":  "आपकी नाक कितनी बंद है या बह रही है?",
	"head_7":  "आपको कितनी बार चक्कर आते हैं या कमरा घूमता लगता है?",
	"head_8":  "आपकी गर्दन और कंधे कितने तनावग्रस्त हैं?",
	"head_9":  "आपकी दृष्टि कितनी धुंधली है?",
	"head_10": "ध्यान केंद्रित करना कितना कठिन है?",

	"stomach_1":  "आपके पेट में दर्द कितना तेज है?",
	"stomach_2":  "आपको कितना फूला हुआ महसूस होता है?",
	"stomach_3":  "आपको कितनी बार सीने में जलन होती है?",
	"stomach_4":  "आपको कितनी मतली महसूस होती है?",
	"stomach_5":  "आपको कितनी बार उल्टी हुई है?",
	"stomach_6":  "आपको कितनी बार दस्त हुए हैं?",
	"stomach_7":  "आपको कितना कब्ज रहा है?",
	"stomach_8":  "आपकी भूख कितनी कम हुई है?",
	"stomach_9":  "तैलीय भोजन के बाद कितना दर्द होता है?",
	"stomach_10": "आपको कितनी बार गले में खट्टा पानी आता है?",

	// Conditions
	"condition.skin.acne":               "मुंहासे",
	"condition.skin.eczema":             "एक्जिमा",
	"condition.skin.psoriasis":          "सोरायसिस",
	"condition.skin.contact_dermatitis": "संपर्क त्वचाशोथ",
	"condition.chest.asthma":            "अस्थमा",
	"condition.chest.bronchitis":        "ब्रोंकाइटिस",
	"condition.chest.pneumonia":         "निमोनिया",
	"condition.chest.heart_strain":      "हृदय पर दबाव",
	"condition.head.migraine":           "माइग्रेन",
	"condition.head.tension_headache":   "तनाव सिरदर्द",
	"condition.head.sinusitis":          "साइनसाइटिस",
	"condition.head.vertigo":            "वर्टिगो",
	"condition.stomach.gerd":            "एसिड रिफ्लक्स (GERD)",
	"condition.stomach.gastroenteritis": "गैस्ट्रोएंटेराइटिस",
	"condition.stomach.ibs":             "इरिटेबल बाउल सिंड्रोम",
	"condition.stomach.gallbladder":     "पित्ताशय रोग",
}
