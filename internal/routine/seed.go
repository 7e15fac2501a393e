package routine

// DefaultPeriods returns the standard morning, afternoon and night
// routines with every step pending.
func DefaultPeriods() []Period {
	return []Period{
		{
			ID:   Morning,
			Name: "Manhã",
			Steps: []Step{
				{ID: "1", Name: "Limpeza Facial", Description: "Use um sabonete suave para remover impurezas"},
				{ID: "2", Name: "Tônico", Description: "Aplique tônico para equilibrar o pH da pele"},
				{ID: "3", Name: "Sérum Vitamina C", Description: "Protege contra radicais livres e ilumina"},
				{ID: "4", Name: "Hidratante", Description: "Hidrate de acordo com seu tipo de pele"},
				{ID: "5", Name: "Protetor Solar FPS 50+", Description: "ESSENCIAL - Aplique generosamente"},
			},
		},
		{
			ID:   Afternoon,
			Name: "Tarde",
			Steps: []Step{
				{ID: "1", Name: "Reaplicar Protetor Solar", Description: "Reaplique a cada 2-3 horas"},
				{ID: "2", Name: "Hidratação Extra", Description: "Se necessário, use spray hidratante"},
			},
		},
		{
			ID:   Night,
			Name: "Noite",
			Steps: []Step{
				{ID: "1", Name: "Demaquilante", Description: "Remova toda maquiagem e impurezas"},
				{ID: "2", Name: "Limpeza Profunda", Description: "Limpe novamente para garantir pele limpa"},
				{ID: "3", Name: "Tônico", Description: "Reaplique o tônico"},
				{ID: "4", Name: "Sérum Noturno", Description: "Use sérum com retinol ou ácido hialurônico"},
				{ID: "5", Name: "Hidratante Noturno", Description: "Versão mais rica para regeneração"},
				{ID: "6", Name: "Creme para Olhos", Description: "Reduza olheiras e linhas finas"},
			},
		},
	}
}

// Tip is a titled instruction inside a guide section.
type Tip struct {
	Title string
	Body  string
}

// GuideSection groups related facial-definition tips.
type GuideSection struct {
	Title string
	Tips  []Tip
}

// FacialGuide returns the static jawline and double-chin guide shown
// below the daily routines.
func FacialGuide() []GuideSection {
	return []GuideSection{
		{
			Title: "Exercícios Faciais",
			Tips: []Tip{
				{"Alongamento do pescoço", "3x ao dia - Incline a cabeça para trás e segure por 10 segundos"},
				{"Beijar o teto", "Olhe para cima e faça movimento de beijo, 15 repetições"},
				{"Língua no céu da boca", "Empurre a língua contra o céu da boca por 30 segundos"},
				{"Mastigação consciente", "Mastigue devagar e use ambos os lados da boca"},
			},
		},
		{
			Title: "Postura",
			Tips: []Tip{
				{"Queixo alinhado", "Mantenha o queixo paralelo ao chão"},
				{"Evite olhar para baixo", "Limite o tempo olhando para o celular"},
			},
		},
		{
			Title: "Hábitos Saudáveis",
			Tips: []Tip{
				{"Hidratação", "Beba pelo menos 2L de água por dia"},
				{"Reduza sódio", "Evite alimentos processados e sal em excesso"},
				{"Posição para dormir", "Durma de costas, evite dormir de bruços"},
			},
		},
		{
			Title: "Skincare Específico",
			Tips: []Tip{
				{"Massageadores faciais", "Use gua sha ou roller de jade diariamente"},
				{"Drenagem linfática", "Massagem suave do centro para fora do rosto"},
				{"Creme firmador", "Aplique creme com cafeína na região do pescoço"},
			},
		},
	}
}
