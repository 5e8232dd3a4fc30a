package generator

import (
	"order-datagen/internal/identity"
	"order-datagen/internal/models"
)

// ProductCategories are the hospital supply categories
var ProductCategories = []string{
	"Medicamento",
	"Material Médico Hospitalar",
	"Serviço de Nutrição e Dietética (SND)",
	"Odontologia",
	"Serviço de Higiene e Limpeza (SHL)",
	"Material de Expediente",
}

var Products = []string{
	"Paracetamol 500mg", "Amoxicilina 500mg", "Dipirona 1g",
	"Seringa 5ml", "Agulha 25x7", "Luva Cirúrgica M", "Luva Cirúrgica G",
	"Máscara Descartável", "Álcool 70%", "Gaze Estéril", "Soro Fisiológico 0,9%",
	"Compressa de Algodão", "Esparadrapo 10cm", "Termômetro Digital",
	"Antisséptico Bucal", "Sabonete Antisséptico",
}

var PaymentMethods = []string{
	models.PaymentMethodPix,
	models.PaymentMethodCard,
	models.PaymentMethodBoleto,
}

var OrderStatuses = []string{
	models.OrderStatusPlaced,
	models.OrderStatusShipped,
	models.OrderStatusDelivered,
	models.OrderStatusReturned,
}

var businessPrefixes = []string{"Comercial", "Distribuidora", "Farmacêutica", "Hospitalar", "Fornecedora"}

// Weighted pools: repeating a value multiplies its weight.
var (
	discountPool = []float64{0, 0, 0, 0.05, 0.10, 0.15}
	delayPool    = []int{0, 0, 0, 1, 3, 7}
)

const (
	SupplierCount     = 80
	ManufacturerCount = 40
)

// Vocabulary holds the company names drawn once at startup. It is read-only
// after BuildVocabulary returns.
type Vocabulary struct {
	Suppliers     []string
	Manufacturers []string
}

// BuildVocabulary draws all suppliers, then all manufacturers. Each entry
// takes a business prefix draw followed by the identity.Company draws.
func BuildVocabulary(src Source) *Vocabulary {
	return &Vocabulary{
		Suppliers:     companyNames(src, SupplierCount),
		Manufacturers: companyNames(src, ManufacturerCount),
	}
}

func companyNames(src Source, n int) []string {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		prefix := src.RandomString(businessPrefixes)
		names = append(names, prefix+" "+identity.Company(src))
	}
	return names
}

func pick[T any](src Source, pool []T) T {
	return pool[src.IntRange(0, len(pool)-1)]
}
