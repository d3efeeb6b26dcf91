package locale

// String keys.
const (
	KeyTitle              = "title"
	KeyInterests          = "interests"
	KeyInterestsHint      = "interests_placeholder"
	KeyStage              = "stage"
	KeyStream             = "stream"
	KeyAcademic           = "academic_performance"
	KeyScoreOption        = "score_option"
	KeySlider             = "slider"
	KeyTest               = "test"
	KeyEnterScores        = "enter_scores"
	KeyAptitudeTest       = "aptitude_test"
	KeyExamType           = "exam_type"
	KeyExamScore          = "exam_score"
	KeyDegreeType         = "degree_type"
	KeyScoreType          = "score_type"
	KeyRecommendation     = "recommendation"
	KeyJobMarket          = "job_market"
	KeySuccess            = "success_message"
	KeyCompleteFields     = "complete_fields"
	KeyNoValidInterests   = "no_valid_interests"
	KeyRecommendedCareers = "recommended_careers"
	KeyTraits             = "personality_traits"
	KeySkillGaps          = "skill_gaps"
	KeyHighMatch          = "high_match"
	KeyGoodMatch          = "good_match"
	KeyTraitStrong        = "trait_strong"
	KeyTraitBalanced      = "trait_balanced"
	KeyGapImprove         = "gap_improve"
	KeyGapTipTechnical    = "gap_tip_technical"
	KeyGapTipDefault      = "gap_tip_default"
	KeyAdvisorError       = "advisor_error"
	KeyAdvisorThinking    = "advisor_thinking"
	KeyQuizCompleted      = "quiz_completed"
	KeyCategoryProgress   = "category_progress"
	KeyNextCategory       = "next_category"
	KeySelectOne          = "select_one"
	KeySelectMany         = "select_many"
	KeyAdvisor            = "advisor"
	KeyAskHint            = "ask_placeholder"
	KeyAdvisorOff         = "advisor_unavailable"
	KeyHistory            = "history"
	KeyNoHistory          = "no_history"
	KeyLanguage           = "language"
	KeyExit               = "exit"
	KeyTagline            = "tagline"
	KeyPressAnyKey        = "press_any_key"
	KeyContinue           = "continue"
	KeyLoading            = "loading"
	KeyScoreRange         = "score_range"
	KeyQuestion           = "question"
)

var table = map[Locale]map[string]string{
	English: {
		KeyTitle:              "CareerQuestAI: Discover Your Path!",
		KeyInterests:          "Tell Us Your Interests",
		KeyInterestsHint:      "E.g., coding, dancing, helping people, science...",
		KeyStage:              "Your Academic Stage",
		KeyStream:             "Choose Your Stream",
		KeyAcademic:           "Academic Performance",
		KeyScoreOption:        "How to Assess Your Skills",
		KeySlider:             "Use Sliders",
		KeyTest:               "Take a Quiz",
		KeyEnterScores:        "Enter Your Scores",
		KeyAptitudeTest:       "Aptitude Test",
		KeyExamType:           "Competitive Exam",
		KeyExamScore:          "Exam Score",
		KeyDegreeType:         "Degree Type",
		KeyScoreType:          "Score Type",
		KeyRecommendation:     "Your Career Recommendation",
		KeyJobMarket:          "Job Market Insights",
		KeySuccess:            "Recommendation generated successfully!",
		KeyCompleteFields:     "Please enter your interests and scores to get a recommendation.",
		KeyNoValidInterests:   "Please provide valid interests.",
		KeyRecommendedCareers: "Recommended Careers",
		KeyTraits:             "Personality Traits",
		KeySkillGaps:          "Skill Gaps",
		KeyHighMatch:          "High match",
		KeyGoodMatch:          "Good match",
		KeyTraitStrong:        "You show strong analytical and problem-solving skills!",
		KeyTraitBalanced:      "You have a balanced skill set with growth potential!",
		KeyGapImprove:         "Improve by",
		KeyGapTipTechnical:    "learning tools like Python",
		KeyGapTipDefault:      "practicing daily",
		KeyAdvisorError:       "Sorry, I couldn't process that. Please try again!",
		KeyAdvisorThinking:    "Thinking...",
		KeyQuizCompleted:      "Test Completed! Your Scores:",
		KeyCategoryProgress:   "Category",
		KeyNextCategory:       "Next Category",
		KeySelectOne:          "Select one",
		KeySelectMany:         "Select all that apply",
		KeyAdvisor:            "Career Advisor",
		KeyAskHint:            "Ask about careers, courses or exams...",
		KeyAdvisorOff:         "The advisor needs an LLM provider. Run `careerquest llm test` to check your setup.",
		KeyHistory:            "Past Quizzes",
		KeyNoHistory:          "No quizzes yet. Take one from the home menu!",
		KeyLanguage:           "Language",
		KeyExit:               "Exit",
		KeyTagline:            "Find the career that fits you.",
		KeyPressAnyKey:        "press any key to continue",
		KeyContinue:           "Continue",
		KeyLoading:            "Loading...",
		KeyScoreRange:         "Score from 0 to 100",
		KeyQuestion:           "Question",
	},
	Hindi: {
		KeyTitle:              "CareerQuestAI: अपनी राह खोजें!",
		KeyInterests:          "हमें अपनी रुचियां बताएं",
		KeyInterestsHint:      "उदाहरण: कोडिंग, नृत्य, लोगों की मदद, विज्ञान...",
		KeyStage:              "आपका शैक्षणिक स्तर",
		KeyStream:             "अपनी स्ट्रीम चुनें",
		KeyAcademic:           "शैक्षणिक प्रदर्शन",
		KeyScoreOption:        "अपने कौशल का आकलन कैसे करें",
		KeySlider:             "स्लाइडर का उपयोग करें",
		KeyTest:               "क्विज़ लें",
		KeyEnterScores:        "अपने अंक दर्ज करें",
		KeyAptitudeTest:       "योग्यता परीक्षा",
		KeyExamType:           "प्रतियोगी परीक्षा",
		KeyExamScore:          "परीक्षा स्कोर",
		KeyDegreeType:         "डिग्री प्रकार",
		KeyScoreType:          "स्कोर प्रकार",
		KeyRecommendation:     "आपकी करियर सिफारिश",
		KeyJobMarket:          "नौकरी बाजार अंतर्दृष्टि",
		KeySuccess:            "सिफारिश सफलतापूर्वक उत्पन्न हुई!",
		KeyCompleteFields:     "कृपया अपनी रुचियां और अंक दर्ज करें।",
		KeyNoValidInterests:   "कृपया वैध रुचियां प्रदान करें।",
		KeyTraitStrong:        "आपमें मजबूत विश्लेषणात्मक और समस्या-समाधान कौशल हैं!",
		KeyTraitBalanced:      "आपके पास संतुलित कौशल सेट और विकास की संभावना है!",
		KeyAdvisorError:       "क्षमा करें, मैं इसे प्रोसेस नहीं कर सका। कृपया पुनः प्रयास करें!",
		KeyAdvisorThinking:    "सोच रहा हूँ...",
		KeyAdvisor:            "करियर सलाहकार",
		KeyAskHint:            "करियर, कोर्स या परीक्षा के बारे में पूछें...",
		KeyHistory:            "पिछली क्विज़",
		KeyLanguage:           "भाषा",
		KeyExit:               "बाहर निकलें",
		KeyTagline:            "वह करियर खोजें जो आपके लिए सही हो।",
		KeyContinue:           "आगे बढ़ें",
		KeyLoading:            "लोड हो रहा है...",
		KeyQuestion:           "प्रश्न",
	},
}
