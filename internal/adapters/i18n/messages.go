package i18n

// messages holds label, attribute and category display text per locale.
var messages = map[string]map[string]string{
	English: {
		"favorable_height":        "Favorable height",
		"good_wingspan":           "Good wingspan",
		"speed":                   "Speed",
		"upper_body_strength":     "Upper body strength",
		"lower_body_strength":     "Lower body strength",
		"coordination":            "Coordination",
		"precision":               "Precision",
		"balance":                 "Balance",
		"agility":                 "Agility",
		"pending_full_evaluation": "Needs full evaluation",
		"pending_evaluation":      "Evaluation pending",

		"height":          "Height",
		"weight":          "Weight",
		"wingspan":        "Wingspan",
		"sprint":          "Sprint",
		"upper_body":      "Upper body strength",
		"lower_body":      "Lower body strength",
		"decision_making": "Decision making",
		"game_vision":     "Game vision",
		"positioning":     "Positioning",
		"motivation":      "Motivation",
		"resilience":      "Resilience",
		"teamwork":        "Teamwork",

		"biotype":       "Biotype",
		"physical":      "Physical",
		"technical":     "Technical",
		"tactical":      "Tactical",
		"psychological": "Psychological",
		"individual":    "Individual",
		"collective":    "Collective",

		"rank":                  "Rank",
		"sport":                 "Sport",
		"compatibility":         "Compatibility",
		"strengths":             "Strengths",
		"development_areas":     "Development areas",
		"category":              "Category",
		"score":                 "Score",
		"attribute":             "Attribute",
		"age_group":             "Age group",
		"development_potential": "Development potential",
		"profile_chart":         "Category profile",
	},
	Portuguese: {
		"favorable_height":        "Altura favorável",
		"good_wingspan":           "Boa envergadura",
		"speed":                   "Velocidade",
		"upper_body_strength":     "Força superior",
		"lower_body_strength":     "Força inferior",
		"coordination":            "Coordenação",
		"precision":               "Precisão",
		"balance":                 "Equilíbrio",
		"agility":                 "Agilidade",
		"pending_full_evaluation": "Necessita avaliação completa",
		"pending_evaluation":      "Avaliação pendente",

		"height":          "Altura",
		"weight":          "Peso",
		"wingspan":        "Envergadura",
		"sprint":          "Velocidade",
		"upper_body":      "Força superior",
		"lower_body":      "Força inferior",
		"decision_making": "Tomada de decisão",
		"game_vision":     "Visão de jogo",
		"positioning":     "Posicionamento",
		"motivation":      "Motivação",
		"resilience":      "Resiliência",
		"teamwork":        "Trabalho em equipe",

		"biotype":       "Biotipo",
		"physical":      "Físico",
		"technical":     "Técnico",
		"tactical":      "Tático",
		"psychological": "Psicológico",
		"individual":    "Individual",
		"collective":    "Coletivo",

		"rank":                  "Posição",
		"sport":                 "Esporte",
		"compatibility":         "Compatibilidade",
		"strengths":             "Pontos fortes",
		"development_areas":     "Áreas de desenvolvimento",
		"category":              "Categoria",
		"score":                 "Pontuação",
		"attribute":             "Atributo",
		"age_group":             "Faixa etária",
		"development_potential": "Potencial de desenvolvimento",
		"profile_chart":         "Perfil por categoria",
	},
}
