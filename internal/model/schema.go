package model

// SheetColumns fixes the canonical column set and order per sheet.
// Column keys are locale-independent; display headers come from the label map.
var SheetColumns = map[Sheet][]string{
	SheetSummary: {
		"problem_statement",
		"target_segment",
		"method",
		"scope",
		"top_findings",
		"strategic_implications",
	},
	SheetBenchmark: {
		"rank",
		"company_product",
		"category",
		"target_user",
		"core_jtbd",
		"platform",
		"geo_focus",
		"traction_score",
		"product_capability_score",
		"monetization_score",
		"user_sentiment_score",
		"execution_maturity_score",
		"evidence_confidence_score",
		"weighted_total",
		"key_strength",
		"key_weakness",
		"threat_level",
		"confidence",
	},
	SheetFeatureMatrix: {
		"l1_capability",
		"l2_module",
		"l3_feature",
		"our_status",
		"competitor_coverage",
		"parity_gap",
		"importance",
		"priority",
	},
	SheetPricingGTM: {
		"product",
		"pricing_model",
		"entry_price",
		"top_tier_price",
		"trial_freemium",
		"packaging_unit",
		"primary_channel",
		"positioning_claim",
		"observed_conversion_frictions",
	},
	SheetSources: {
		"product",
		"source_type",
		"url",
		"title",
		"published_date",
		"access_date",
		"claim",
		"evidence_snippet",
		"confidence",
	},
}

// SheetWidths are the workbook column widths per sheet, matching SheetColumns
var SheetWidths = map[Sheet][]float64{
	SheetSummary:       {34, 24, 18, 20, 48, 48},
	SheetBenchmark:     {8, 26, 30, 20, 26, 16, 14, 16, 20, 18, 18, 20, 20, 18, 28, 28, 14, 18},
	SheetFeatureMatrix: {24, 22, 34, 30, 24, 18, 18, 18},
	SheetPricingGTM:    {22, 20, 14, 14, 18, 18, 32, 36, 36},
	SheetSources:       {24, 28, 46, 32, 16, 14, 34, 46, 18},
}
