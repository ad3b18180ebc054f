package service

import "encoding/json"

// Ingredient DTOs
type CreateIngredientDTO struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	UnitType string  `json:"unit_type"`
	Active   *bool   `json:"active"`
}

type UpdateIngredientDTO struct {
	Name     string   `json:"name"`
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
	UnitType string   `json:"unit_type"`
	Active   *bool    `json:"active"`
}

// Plan DTOs
type CreatePlanDTO struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	TargetCalories int             `json:"target_calories"`
	ProteinPct     float64         `json:"protein_pct"`
	CarbsPct       float64         `json:"carbs_pct"`
	FatPct         float64         `json:"fat_pct"`
	CategoryID     *uint           `json:"category_id"`
	Days           json.RawMessage `json:"days"`
}

type UpdatePlanDTO struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	TargetCalories int             `json:"target_calories"`
	ProteinPct     float64         `json:"protein_pct"`
	CarbsPct       float64         `json:"carbs_pct"`
	FatPct         float64         `json:"fat_pct"`
	CategoryID     *uint           `json:"category_id"`
	Days           json.RawMessage `json:"days"`
}

// ScaleRequestDTO carries who is scaling and optional explicit overrides.
// Explicit targets win over the stored profile; a zero UserID means an
// anonymous request that relies on overrides or the plan defaults.
type ScaleRequestDTO struct {
	UserID         uint     `json:"user_id"`
	TargetCalories *float64 `json:"target_calories"`
	ProteinGrams   *float64 `json:"target_protein"`
	CarbsGrams     *float64 `json:"target_carbs"`
	FatGrams       *float64 `json:"target_fat"`
}

// Category DTOs
type CreateCategoryDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type UpdateCategoryDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// User DTOs
type CreateUserDTO struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type UpdateProfileDTO struct {
	Age            int     `json:"age"`
	WeightKG       float64 `json:"weight_kg"`
	HeightCM       float64 `json:"height_cm"`
	Sex            string  `json:"sex"`
	ActivityLevel  string  `json:"activity_level"`
	TargetCalories int     `json:"target_calories"`
	ProteinPct     float64 `json:"protein_pct"`
	CarbsPct       float64 `json:"carbs_pct"`
	FatPct         float64 `json:"fat_pct"`
}
