package catalog

import (
	"fmt"
	"strings"
)

// FeaturedCategory is the highlighted whitening kit category.
const FeaturedCategory = "Kit Clareador"

const shopLink = "https://s.shopee.com.br/7AW9MVEv5o"

// Product is a static product recommendation.
type Product struct {
	ID          string
	Name        string
	Category    string
	Description string
	Rating      float64
	Price       string
	Reason      string
	Featured    bool
	Link        string
}

// Products returns the recommendation catalog in display order. The
// stated skin type is substituted into the reason text of a few products;
// no filtering is applied.
func Products(skinType string) []Product {
	skin := strings.ToLower(skinType)
	if skin == "" {
		skin = "sua pele"
	}
	return []Product{
		{
			ID:          "kit-1",
			Name:        "Água Micelar Vitamina C",
			Category:    FeaturedCategory,
			Description: "Remove impurezas e maquiagem enquanto ilumina a pele com Vitamina C",
			Rating:      4.9,
			Price:       "Ver na Shopee",
			Reason:      "Limpeza suave e eficaz que prepara a pele para absorver melhor os ativos clareadores.",
			Featured:    true,
			Link:        shopLink,
		},
		{
			ID:          "kit-2",
			Name:        "Esfoliante Vitamina C",
			Category:    FeaturedCategory,
			Description: "Esfoliação suave que remove células mortas e potencializa o clareamento",
			Rating:      4.8,
			Price:       "Ver na Shopee",
			Reason:      "Renova a pele e melhora a absorção dos produtos clareadores da rotina.",
			Featured:    true,
			Link:        shopLink,
		},
		{
			ID:          "kit-3",
			Name:        "Sabonete Vitamina C",
			Category:    FeaturedCategory,
			Description: "Limpeza diária com ação clareadora e antioxidante",
			Rating:      4.7,
			Price:       "Ver na Shopee",
			Reason:      "Limpa profundamente enquanto uniformiza o tom da pele com Vitamina C.",
			Featured:    true,
			Link:        shopLink,
		},
		{
			ID:          "kit-4",
			Name:        "Gel Vitamina C",
			Category:    FeaturedCategory,
			Description: "Gel hidratante com alta concentração de Vitamina C para luminosidade",
			Rating:      4.9,
			Price:       "Ver na Shopee",
			Reason:      "Hidrata e ilumina a pele, reduzindo manchas e sinais de cansaço.",
			Featured:    true,
			Link:        shopLink,
		},
		{
			ID:          "kit-5",
			Name:        "Sérum Clareador - Ácido Mandélico e Niacinamida",
			Category:    FeaturedCategory,
			Description: "Potente combinação para clareamento profundo e uniformização da pele",
			Rating:      5.0,
			Price:       "Ver na Shopee",
			Reason:      "Ácido Mandélico esfolia suavemente enquanto Niacinamida clareia manchas e controla oleosidade. Resultado comprovado!",
			Featured:    true,
			Link:        shopLink,
		},
		{
			ID:          "1",
			Name:        "Protetor Solar FPS 50+",
			Category:    "Proteção Solar",
			Description: "Proteção UVA/UVB de amplo espectro, textura leve",
			Rating:      4.8,
			Price:       "R$ 45-80",
			Reason:      fmt.Sprintf("Essencial para %s. Previne manchas e envelhecimento precoce.", skin),
			Link:        shopLink,
		},
		{
			ID:          "3",
			Name:        "Ácido Hialurônico",
			Category:    "Hidratante",
			Description: "Hidratação profunda, retém água na pele",
			Rating:      4.9,
			Price:       "R$ 50-90",
			Reason:      fmt.Sprintf("Perfeito para %s. Mantém a pele hidratada sem oleosidade.", skin),
			Link:        shopLink,
		},
		{
			ID:          "4",
			Name:        "Retinol 0.5%",
			Category:    "Sérum Noturno",
			Description: "Anti-idade, melhora textura e reduz linhas",
			Rating:      4.6,
			Price:       "R$ 70-150",
			Reason:      "Renovação celular e melhora da textura da pele.",
			Link:        shopLink,
		},
		{
			ID:          "7",
			Name:        "Creme para Olhos com Cafeína",
			Category:    "Área dos Olhos",
			Description: "Reduz olheiras e inchaço",
			Rating:      4.5,
			Price:       "R$ 45-90",
			Reason:      "Trata olheiras e linhas finas ao redor dos olhos.",
			Link:        shopLink,
		},
		{
			ID:          "8",
			Name:        "Máscara de Argila",
			Category:    "Máscara",
			Description: "Purifica e desintoxica a pele",
			Rating:      4.6,
			Price:       "R$ 30-60",
			Reason:      "Limpeza profunda semanal para pele mais saudável.",
			Link:        shopLink,
		},
	}
}

// Categories returns the distinct categories of products in first-seen
// order.
func Categories(products []Product) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// InCategory returns the products belonging to category, preserving order.
func InCategory(products []Product, category string) []Product {
	var out []Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
