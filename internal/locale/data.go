package locale

import "github.com/haowu77/competitive-analysis-skill/internal/model"

// Label tables for the seven supported locales. Canonical keys are the
// locale-independent column/sheet identifiers; only display strings vary.
var locales = map[string]*Labels{
	"en": {
		Code: "en",
		SheetNames: map[model.Sheet]string{
			model.SheetSummary:       "Summary",
			model.SheetBenchmark:     "Benchmark",
			model.SheetFeatureMatrix: "Feature-Matrix",
			model.SheetPricingGTM:    "Pricing-GTM",
			model.SheetSources:       "Sources",
		},
		Headers: map[string]string{
			"problem_statement":             "Problem Statement",
			"target_segment":                "Target Segment",
			"method":                        "Method",
			"scope":                         "Scope",
			"top_findings":                  "Top Findings",
			"strategic_implications":        "Strategic Implications",
			"rank":                          "Rank",
			"company_product":               "Company/Product",
			"category":                      "Category(Direct/Adjacent/Substitute)",
			"target_user":                   "Target User",
			"core_jtbd":                     "Core JTBD",
			"platform":                      "Platform",
			"geo_focus":                     "Geo Focus",
			"traction_score":                "Traction Score(1-5)",
			"product_capability_score":      "Product Capability Score(1-5)",
			"monetization_score":            "Monetization Score(1-5)",
			"user_sentiment_score":          "User Sentiment Score(1-5)",
			"execution_maturity_score":      "Execution Maturity Score(1-5)",
			"evidence_confidence_score":     "Evidence Confidence Score(1-5)",
			"weighted_total":                "Weighted Total(0-5)",
			"key_strength":                  "Key Strength",
			"key_weakness":                  "Key Weakness",
			"threat_level":                  "Threat Level",
			"l1_capability":                 "L1 Capability",
			"l2_module":                     "L2 Module",
			"l3_feature":                    "L3 Feature",
			"our_status":                    "Our Status(None/Planned/Live)",
			"competitor_coverage":           "Competitor Coverage(0/1)",
			"parity_gap":                    "Parity Gap",
			"importance":                    "Importance(H/M/L)",
			"priority":                      "Priority",
			"product":                       "Product",
			"pricing_model":                 "Pricing Model",
			"entry_price":                   "Entry Price",
			"top_tier_price":                "Top Tier Price",
			"trial_freemium":                "Trial/Freemium",
			"packaging_unit":                "Packaging Unit",
			"primary_channel":               "Primary Channel(SEO/PLG/Sales/Partner)",
			"positioning_claim":             "Positioning Claim",
			"observed_conversion_frictions": "Observed Conversion Frictions",
			"source_type":                   "Source Type(Official/Store/Review/Media/Research)",
			"url":                           "URL",
			"title":                         "Title",
			"published_date":                "Published Date",
			"access_date":                   "Access Date",
			"claim":                         "Claim",
			"evidence_snippet":              "Evidence Snippet",
			"confidence":                    "Confidence(High/Med/Low)",
		},
		SummaryTemplates: []SummaryTemplate{
			{
				ProblemStatement:      "Market Definition",
				TargetSegment:         "Primary user segment to be validated",
				Method:                "JTBD + competitor classification + weighted scoring",
				TopFindings:           "Fill market definition based on brief/repo context",
				StrategicImplications: "Clarify category boundary before scoring",
			},
			{
				ProblemStatement:      "Positioning Statement",
				TargetSegment:         "Priority segment for GTM",
				Method:                "Relative positioning vs Direct/Adjacent/Substitute",
				TopFindings:           "Define what you compete on and what you intentionally do not",
				StrategicImplications: "Prevent scope creep and category drift",
			},
			{
				ProblemStatement:      "Strategic Implications",
				TargetSegment:         "Product + GTM stakeholders",
				Method:                "Gap synthesis from benchmark and feature matrix",
				TopFindings:           "Prioritize top 2-3 execution bets from competitor gaps",
				StrategicImplications: "Convert benchmark insights into roadmap decisions",
			},
		},
		Enums: map[string]map[string]string{
			"threat":     {"high": "High", "medium": "Medium", "low": "Low"},
			"category":   {"direct": "Direct", "adjacent": "Adjacent", "substitute": "Substitute"},
			"confidence": {"high": "High", "med": "Med", "low": "Low"},
			"our_status": {"none": "None", "planned": "Planned", "live": "Live"},
			"parity_gap":  {"lead": "Lead", "parity": "Parity", "partial": "Partial", "gap": "Gap"},
			"source_type": {"official": "Official", "store": "Store", "review": "Review", "media": "Media", "research": "Research"},
		},
		Warnings: map[string]string{
			"title":               "Warnings:",
			"sources_lt3":         "[WARN] %s: sources < 3",
			"missing_official":    "[WARN] %s: missing official source",
			"missing_third":       "[WARN] %s: missing third-party source",
			"dropped_no_identity": "[WARN] row %d: dropped, missing company/product name",
			"dropped_evidence":    "[WARN] %s: dropped, %d source(s) below minimum of %d",
		},
	},
	"zh": {
		Code: "zh",
		SheetNames: map[model.Sheet]string{
			model.SheetSummary:       "摘要",
			model.SheetBenchmark:     "竞品基准",
			model.SheetFeatureMatrix: "功能矩阵",
			model.SheetPricingGTM:    "定价-GTM",
			model.SheetSources:       "证据来源",
		},
		Headers: map[string]string{
			"problem_statement":             "问题定义",
			"target_segment":                "目标用户",
			"method":                        "方法",
			"scope":                         "范围",
			"top_findings":                  "关键发现",
			"strategic_implications":        "战略含义",
			"rank":                          "排名",
			"company_product":               "公司/产品",
			"category":                      "分类(直接/邻近/替代)",
			"target_user":                   "目标人群",
			"core_jtbd":                     "核心JTBD",
			"platform":                      "平台",
			"geo_focus":                     "地域聚焦",
			"traction_score":                "增长势能评分(1-5)",
			"product_capability_score":      "产品能力评分(1-5)",
			"monetization_score":            "商业化评分(1-5)",
			"user_sentiment_score":          "用户口碑评分(1-5)",
			"execution_maturity_score":      "执行成熟度评分(1-5)",
			"evidence_confidence_score":     "证据可信度评分(1-5)",
			"weighted_total":                "加权总分(0-5)",
			"key_strength":                  "主要优势",
			"key_weakness":                  "主要短板",
			"threat_level":                  "威胁等级",
			"l1_capability":                 "L1 能力域",
			"l2_module":                     "L2 模块",
			"l3_feature":                    "L3 功能",
			"our_status":                    "我方状态(None/Planned/Live)",
			"competitor_coverage":           "竞品覆盖(0/1)",
			"parity_gap":                    "对位差距",
			"importance":                    "重要性(H/M/L)",
			"priority":                      "优先级",
			"product":                       "产品",
			"pricing_model":                 "定价模型",
			"entry_price":                   "入门价格",
			"top_tier_price":                "最高档价格",
			"trial_freemium":                "试用/免费",
			"packaging_unit":                "计费单位",
			"primary_channel":               "主要渠道(SEO/PLG/Sales/Partner)",
			"positioning_claim":             "定位主张",
			"observed_conversion_frictions": "转化阻力观察",
			"source_type":                   "来源类型(官方/商店/评测/媒体/研究)",
			"url":                           "链接",
			"title":                         "标题",
			"published_date":                "发布日期",
			"access_date":                   "访问日期",
			"claim":                         "结论主张",
			"evidence_snippet":              "证据摘录",
			"confidence":                    "可信度(高/中/低)",
		},
		SummaryTemplates: []SummaryTemplate{
			{
				ProblemStatement:      "市场定义",
				TargetSegment:         "待验证的核心用户群",
				Method:                "JTBD + 竞品分层 + 加权评分",
				TopFindings:           "基于需求描述或项目上下文补全市场定义",
				StrategicImplications: "先明确品类边界，再进入评分",
			},
			{
				ProblemStatement:      "定位陈述",
				TargetSegment:         "优先服务的GTM用户段",
				Method:                "相对定位(直接/邻近/替代)",
				TopFindings:           "定义“我们比什么”与“我们不比什么”",
				StrategicImplications: "防止范围蔓延与定位漂移",
			},
			{
				ProblemStatement:      "战略含义",
				TargetSegment:         "产品与增长决策团队",
				Method:                "基准表 + 功能矩阵差距综合",
				TopFindings:           "提炼2-3个最高优先级执行方向",
				StrategicImplications: "将竞品结论直接转为路线图决策",
			},
		},
		Enums: map[string]map[string]string{
			"threat":     {"high": "高", "medium": "中", "low": "低"},
			"category":   {"direct": "直接竞品", "adjacent": "邻近竞品", "substitute": "替代方案"},
			"confidence": {"high": "高", "med": "中", "low": "低"},
			"our_status": {"none": "无", "planned": "规划中", "live": "已上线"},
			"parity_gap":  {"lead": "领先", "parity": "同等", "partial": "部分差距", "gap": "差距"},
			"source_type": {"official": "官方", "store": "商店", "review": "评测", "media": "媒体", "research": "研究"},
		},
		Warnings: map[string]string{
			"title":            "警告:",
			"sources_lt3":      "[WARN] %s: 来源少于3条",
			"missing_official": "[WARN] %s: 缺少官方来源",
			"missing_third":       "[WARN] %s: 缺少第三方来源",
			"dropped_no_identity": "[WARN] 第%d行: 已剔除，缺少公司/产品名称",
			"dropped_evidence":    "[WARN] %s: 已剔除，来源%d条低于最低要求%d条",
		},
	},
	"ja": {
		Code: "ja",
		SheetNames: map[model.Sheet]string{
			model.SheetSummary:       "サマリー",
			model.SheetBenchmark:     "ベンチマーク",
			model.SheetFeatureMatrix: "機能マトリクス",
			model.SheetPricingGTM:    "価格・GTM",
			model.SheetSources:       "ソース",
		},
		Headers: map[string]string{
			"problem_statement":             "課題定義",
			"target_segment":                "ターゲットセグメント",
			"method":                        "手法",
			"scope":                         "範囲",
			"top_findings":                  "主要な発見",
			"strategic_implications":        "戦略的示唆",
			"rank":                          "順位",
			"company_product":               "企業/製品",
			"category":                      "分類(直接/隣接/代替)",
			"target_user":                   "対象ユーザー",
			"core_jtbd":                     "コアJTBD",
			"platform":                      "プラットフォーム",
			"geo_focus":                     "地域フォーカス",
			"traction_score":                "トラクションスコア(1-5)",
			"product_capability_score":      "製品能力スコア(1-5)",
			"monetization_score":            "収益化スコア(1-5)",
			"user_sentiment_score":          "ユーザー評価スコア(1-5)",
			"execution_maturity_score":      "実行成熟度スコア(1-5)",
			"evidence_confidence_score":     "証拠信頼度スコア(1-5)",
			"weighted_total":                "加重合計(0-5)",
			"key_strength":                  "強み",
			"key_weakness":                  "弱み",
			"threat_level":                  "脅威レベル",
			"l1_capability":                 "L1 能力",
			"l2_module":                     "L2 モジュール",
			"l3_feature":                    "L3 機能",
			"our_status":                    "自社ステータス(None/Planned/Live)",
			"competitor_coverage":           "競合カバー率(0/1)",
			"parity_gap":                    "ギャップ",
			"importance":                    "重要度(H/M/L)",
			"priority":                      "優先度",
			"product":                       "製品",
			"pricing_model":                 "価格モデル",
			"entry_price":                   "開始価格",
			"top_tier_price":                "上位価格",
			"trial_freemium":                "トライアル/無料",
			"packaging_unit":                "課金単位",
			"primary_channel":               "主要チャネル(SEO/PLG/Sales/Partner)",
			"positioning_claim":             "ポジショニング",
			"observed_conversion_frictions": "転換障壁",
			"source_type":                   "ソース種別(公式/ストア/レビュー/メディア/調査)",
			"url":                           "URL",
			"title":                         "タイトル",
			"published_date":                "公開日",
			"access_date":                   "アクセス日",
			"claim":                         "主張",
			"evidence_snippet":              "証拠抜粋",
			"confidence":                    "信頼度(高/中/低)",
		},
		SummaryTemplates: []SummaryTemplate{
			{
				ProblemStatement:      "市場定義",
				TargetSegment:         "検証対象の主要ユーザー層",
				Method:                "JTBD + 競合分類 + 加重評価",
				TopFindings:           "要件またはリポジトリ文脈から市場定義を補完",
				StrategicImplications: "評価前にカテゴリ境界を明確化",
			},
			{
				ProblemStatement:      "ポジショニング",
				TargetSegment:         "優先すべきGTMセグメント",
				Method:                "直接/隣接/代替の相対比較",
				TopFindings:           "何で勝負し、何で勝負しないかを定義",
				StrategicImplications: "スコープ拡散とポジションずれを防止",
			},
			{
				ProblemStatement:      "戦略的示唆",
				TargetSegment:         "プロダクト/成長チーム",
				Method:                "ベンチマークと機能ギャップの統合",
				TopFindings:           "優先度の高い実行テーマを2-3件抽出",
				StrategicImplications: "競合分析をロードマップ判断へ直結",
			},
		},
		Enums: map[string]map[string]string{
			"threat":     {"high": "高", "medium": "中", "low": "低"},
			"category":   {"direct": "直接競合", "adjacent": "隣接競合", "substitute": "代替"},
			"confidence": {"high": "高", "med": "中", "low": "低"},
			"our_status": {"none": "未対応", "planned": "計画中", "live": "提供中"},
			"parity_gap":  {"lead": "優位", "parity": "同等", "partial": "部分ギャップ", "gap": "ギャップ"},
			"source_type": {"official": "公式", "store": "ストア", "review": "レビュー", "media": "メディア", "research": "調査"},
		},
		Warnings: map[string]string{
			"title":            "警告:",
			"sources_lt3":      "[WARN] %s: ソースが3件未満",
			"missing_official": "[WARN] %s: 公式ソース不足",
			"missing_third":       "[WARN] %s: 第三者ソース不足",
			"dropped_no_identity": "[WARN] 行%d: 除外、会社名/製品名なし",
			"dropped_evidence":    "[WARN] %s: 除外、ソース%d件が最低%d件未満",
		},
	},
	"ko": {
		Code: "ko",
		SheetNames: map[model.Sheet]string{
			model.SheetSummary:       "요약",
			model.SheetBenchmark:     "벤치마크",
			model.SheetFeatureMatrix: "기능 매트릭스",
			model.SheetPricingGTM:    "가격-GTM",
			model.SheetSources:       "출처",
		},
		Headers: map[string]string{
			"problem_statement":             "문제 정의",
			"target_segment":                "타깃 세그먼트",
			"method":                        "방법",
			"scope":                         "범위",
			"top_findings":                  "핵심 발견",
			"strategic_implications":        "전략적 시사점",
			"rank":                          "순위",
			"company_product":               "회사/제품",
			"category":                      "분류(직접/인접/대체)",
			"target_user":                   "타깃 사용자",
			"core_jtbd":                     "핵심 JTBD",
			"platform":                      "플랫폼",
			"geo_focus":                     "지역 포커스",
			"traction_score":                "성장 점수(1-5)",
			"product_capability_score":      "제품 역량 점수(1-5)",
			"monetization_score":            "수익화 점수(1-5)",
			"user_sentiment_score":          "사용자 평판 점수(1-5)",
			"execution_maturity_score":      "실행 성숙도 점수(1-5)",
			"evidence_confidence_score":     "근거 신뢰도 점수(1-5)",
			"weighted_total":                "가중 총점(0-5)",
			"key_strength":                  "강점",
			"key_weakness":                  "약점",
			"threat_level":                  "위협 수준",
			"l1_capability":                 "L1 역량",
			"l2_module":                     "L2 모듈",
			"l3_feature":                    "L3 기능",
			"our_status":                    "우리 상태(None/Planned/Live)",
			"competitor_coverage":           "경쟁사 커버리지(0/1)",
			"parity_gap":                    "격차",
			"importance":                    "중요도(H/M/L)",
			"priority":                      "우선순위",
			"product":                       "제품",
			"pricing_model":                 "가격 모델",
			"entry_price":                   "진입 가격",
			"top_tier_price":                "상위 가격",
			"trial_freemium":                "체험/무료",
			"packaging_unit":                "과금 단위",
			"primary_channel":               "주요 채널(SEO/PLG/Sales/Partner)",
			"positioning_claim":             "포지셔닝",
			"observed_conversion_frictions": "전환 저해 요인",
			"source_type":                   "출처 유형(공식/스토어/리뷰/미디어/리서치)",
			"url":                           "URL",
			"title":                         "제목",
			"published_date":                "게시일",
			"access_date":                   "접근일",
			"claim":                         "주장",
			"evidence_snippet":              "근거 요약",
			"confidence":                    "신뢰도(높음/중간/낮음)",
		},
		SummaryTemplates: []SummaryTemplate{
			{
				ProblemStatement:      "시장 정의",
				TargetSegment:         "검증 대상 핵심 사용자군",
				Method:                "JTBD + 경쟁 분류 + 가중 점수",
				TopFindings:           "요구사항/레포 문맥 기반 시장 정의 보완",
				StrategicImplications: "평가 전에 카테고리 경계를 명확히",
			},
			{
				ProblemStatement:      "포지셔닝 진술",
				TargetSegment:         "우선 공략 GTM 세그먼트",
				Method:                "직접/인접/대체 상대 비교",
				TopFindings:           "무엇으로 경쟁하고 무엇은 경쟁하지 않을지 정의",
				StrategicImplications: "범위 확장과 포지션 흔들림 방지",
			},
			{
				ProblemStatement:      "전략적 시사점",
				TargetSegment:         "제품 및 성장 의사결정자",
				Method:                "벤치마크 + 기능 격차 통합",
				TopFindings:           "상위 2~3개 실행 우선순위 도출",
				StrategicImplications: "경쟁 분석을 로드맵으로 연결",
			},
		},
		Enums: map[string]map[string]string{
			"threat":     {"high": "높음", "medium": "중간", "low": "낮음"},
			"category":   {"direct": "직접 경쟁", "adjacent": "인접 경쟁", "substitute": "대체재"},
			"confidence": {"high": "높음", "med": "중간", "low": "낮음"},
			"our_status": {"none": "없음", "planned": "계획", "live": "운영"},
			"parity_gap":  {"lead": "우위", "parity": "동등", "partial": "부분 격차", "gap": "격차"},
			"source_type": {"official": "공식", "store": "스토어", "review": "리뷰", "media": "미디어", "research": "리서치"},
		},
		Warnings: map[string]string{
			"title":            "경고:",
			"sources_lt3":      "[WARN] %s: 출처가 3개 미만",
			"missing_official": "[WARN] %s: 공식 출처 누락",
			"missing_third":       "[WARN] %s: 제3자 출처 누락",
			"dropped_no_identity": "[WARN] 행 %d: 제외됨, 회사/제품명 누락",
			"dropped_evidence":    "[WARN] %s: 제외됨, 출처 %d개가 최소 %d개 미만",
		},
	},
	"es": {
		Code: "es",
		SheetNames: map[model.Sheet]string{
			model.SheetSummary:       "Resumen",
			model.SheetBenchmark:     "Benchmark",
			model.SheetFeatureMatrix: "Matriz de Funciones",
			model.SheetPricingGTM:    "Precios-GTM",
			model.SheetSources:       "Fuentes",
		},
		Headers: map[string]string{
			"problem_statement":             "Definición del Problema",
			"target_segment":                "Segmento Objetivo",
			"method":                        "Método",
			"scope":                         "Alcance",
			"top_findings":                  "Hallazgos Clave",
			"strategic_implications":        "Implicaciones Estratégicas",
			"rank":                          "Ranking",
			"company_product":               "Empresa/Producto",
			"category":                      "Categoría(Directo/Adyacente/Sustituto)",
			"target_user":                   "Usuario Objetivo",
			"core_jtbd":                     "JTBD Principal",
			"platform":                      "Plataforma",
			"geo_focus":                     "Foco Geográfico",
			"traction_score":                "Score de Tracción(1-5)",
			"product_capability_score":      "Score de Capacidad de Producto(1-5)",
			"monetization_score":            "Score de Monetización(1-5)",
			"user_sentiment_score":          "Score de Opinión de Usuario(1-5)",
			"execution_maturity_score":      "Score de Madurez de Ejecución(1-5)",
			"evidence_confidence_score":     "Score de Confianza de Evidencia(1-5)",
			"weighted_total":                "Total Ponderado(0-5)",
			"key_strength":                  "Fortaleza Clave",
			"key_weakness":                  "Debilidad Clave",
			"threat_level":                  "Nivel de Amenaza",
			"l1_capability":                 "Capacidad L1",
			"l2_module":                     "Módulo L2",
			"l3_feature":                    "Función L3",
			"our_status":                    "Estado Nuestro(None/Planned/Live)",
			"competitor_coverage":           "Cobertura de Competidor(0/1)",
			"parity_gap":                    "Brecha de Paridad",
			"importance":                    "Importancia(H/M/L)",
			"priority":                      "Prioridad",
			"product":                       "Producto",
			"pricing_model":                 "Modelo de Precio",
			"entry_price":                   "Precio de Entrada",
			"top_tier_price":                "Precio Superior",
			"trial_freemium":                "Prueba/Freemium",
			"packaging_unit":                "Unidad de Paquete",
			"primary_channel":               "Canal Principal(SEO/PLG/Sales/Partner)",
			"positioning_claim":             "Propuesta de Posicionamiento",
			"observed_conversion_frictions": "Fricciones de Conversión Observadas",
			"source_type":                   "Tipo de Fuente(Official/Store/Review/Media/Research)",
			"url":                           "URL",
			"title":                         "Título",
			"published_date":                "Fecha de Publicación",
			"access_date":                   "Fecha de Acceso",
			"claim":                         "Afirmación",
			"evidence_snippet":              "Extracto de Evidencia",
			"confidence":                    "Confianza(Alta/Media/Baja)",
		},
		SummaryTemplates: []SummaryTemplate{
			{
				ProblemStatement:      "Definición de Mercado",
				TargetSegment:         "Segmento principal por validar",
				Method:                "JTBD + clasificación de competidores + scoring ponderado",
				TopFindings:           "Completar definición de mercado según brief/contexto",
				StrategicImplications: "Aclarar frontera de categoría antes de puntuar",
			},
			{
				ProblemStatement:      "Declaración de Posicionamiento",
				TargetSegment:         "Segmento GTM prioritario",
				Method:                "Posicionamiento relativo vs Directo/Adyacente/Sustituto",
				TopFindings:           "Definir en qué competir y en qué no",
				StrategicImplications: "Evitar deriva de alcance y categoría",
			},
			{
				ProblemStatement:      "Implicaciones Estratégicas",
				TargetSegment:         "Stakeholders de producto y GTM",
				Method:                "Síntesis de brechas desde benchmark y matriz de funciones",
				TopFindings:           "Priorizar 2-3 apuestas de ejecución",
				StrategicImplications: "Convertir benchmark en decisiones de roadmap",
			},
		},
		Enums: map[string]map[string]string{
			"threat":     {"high": "Alto", "medium": "Medio", "low": "Bajo"},
			"category":   {"direct": "Directo", "adjacent": "Adyacente", "substitute": "Sustituto"},
			"confidence": {"high": "Alta", "med": "Media", "low": "Baja"},
			"our_status": {"none": "Ninguno", "planned": "Planificado", "live": "Activo"},
			"parity_gap":  {"lead": "Lidera", "parity": "Paridad", "partial": "Parcial", "gap": "Brecha"},
			"source_type": {"official": "Official", "store": "Store", "review": "Review", "media": "Media", "research": "Research"},
		},
		Warnings: map[string]string{
			"title":            "Advertencias:",
			"sources_lt3":      "[WARN] %s: fuentes < 3",
			"missing_official": "[WARN] %s: falta fuente oficial",
			"missing_third":       "[WARN] %s: falta fuente de terceros",
			"dropped_no_identity": "[WARN] fila %d: descartada, falta nombre de empresa/producto",
			"dropped_evidence":    "[WARN] %s: descartado, %d fuente(s) por debajo del mínimo de %d",
		},
	},
	"fr": {
		Code: "fr",
		SheetNames: map[model.Sheet]string{
			model.SheetSummary:       "Résumé",
			model.SheetBenchmark:     "Benchmark",
			model.SheetFeatureMatrix: "Matrice Fonctionnelle",
			model.SheetPricingGTM:    "Prix-GTM",
			model.SheetSources:       "Sources",
		},
		Headers: map[string]string{
			"problem_statement":             "Définition du Problème",
			"target_segment":                "Segment Cible",
			"method":                        "Méthode",
			"scope":                         "Périmètre",
			"top_findings":                  "Principaux Résultats",
			"strategic_implications":        "Implications Stratégiques",
			"rank":                          "Rang",
			"company_product":               "Entreprise/Produit",
			"category":                      "Catégorie(Direct/Adjacent/Substitut)",
			"target_user":                   "Utilisateur Cible",
			"core_jtbd":                     "JTBD Central",
			"platform":                      "Plateforme",
			"geo_focus":                     "Cible Géographique",
			"traction_score":                "Score de Traction(1-5)",
			"product_capability_score":      "Score Capacité Produit(1-5)",
			"monetization_score":            "Score Monétisation(1-5)",
			"user_sentiment_score":          "Score Sentiment Utilisateur(1-5)",
			"execution_maturity_score":      "Score Maturité Exécution(1-5)",
			"evidence_confidence_score":     "Score Confiance Preuve(1-5)",
			"weighted_total":                "Total Pondéré(0-5)",
			"key_strength":                  "Force Clé",
			"key_weakness":                  "Faiblesse Clé",
			"threat_level":                  "Niveau de Menace",
			"l1_capability":                 "Capacité L1",
			"l2_module":                     "Module L2",
			"l3_feature":                    "Fonctionnalité L3",
			"our_status":                    "Notre Statut(None/Planned/Live)",
			"competitor_coverage":           "Couverture Concurrent(0/1)",
			"parity_gap":                    "Écart de Parité",
			"importance":                    "Importance(H/M/L)",
			"priority":                      "Priorité",
			"product":                       "Produit",
			"pricing_model":                 "Modèle Tarifaire",
			"entry_price":                   "Prix d'Entrée",
			"top_tier_price":                "Prix Max",
			"trial_freemium":                "Essai/Freemium",
			"packaging_unit":                "Unité de Packaging",
			"primary_channel":               "Canal Principal(SEO/PLG/Sales/Partner)",
			"positioning_claim":             "Promesse de Positionnement",
			"observed_conversion_frictions": "Friction de Conversion Observée",
			"source_type":                   "Type de Source(Official/Store/Review/Media/Research)",
			"url":                           "URL",
			"title":                         "Titre",
			"published_date":                "Date de Publication",
			"access_date":                   "Date d'Accès",
			"claim":                         "Assertion",
			"evidence_snippet":              "Extrait de Preuve",
			"confidence":                    "Confiance(Haut/Moyen/Bas)",
		},
		SummaryTemplates: []SummaryTemplate{
			{
				ProblemStatement:      "Définition du Marché",
				TargetSegment:         "Segment principal à valider",
				Method:                "JTBD + classification concurrentielle + score pondéré",
				TopFindings:           "Compléter selon brief/contexte projet",
				StrategicImplications: "Clarifier la frontière de catégorie avant scoring",
			},
			{
				ProblemStatement:      "Positionnement",
				TargetSegment:         "Segment GTM prioritaire",
				Method:                "Positionnement relatif vs Direct/Adjacent/Substitut",
				TopFindings:           "Définir ce qui est comparé et ce qui ne l'est pas",
				StrategicImplications: "Éviter dérive de périmètre et de catégorie",
			},
			{
				ProblemStatement:      "Implications Stratégiques",
				TargetSegment:         "Parties prenantes produit et GTM",
				Method:                "Synthèse des écarts benchmark + matrice fonctionnelle",
				TopFindings:           "Prioriser 2-3 paris d'exécution",
				StrategicImplications: "Transformer le benchmark en décisions roadmap",
			},
		},
		Enums: map[string]map[string]string{
			"threat":     {"high": "Élevé", "medium": "Moyen", "low": "Faible"},
			"category":   {"direct": "Direct", "adjacent": "Adjacent", "substitute": "Substitut"},
			"confidence": {"high": "Haut", "med": "Moyen", "low": "Bas"},
			"our_status": {"none": "Aucun", "planned": "Planifié", "live": "En ligne"},
			"parity_gap":  {"lead": "Avance", "parity": "Parité", "partial": "Partiel", "gap": "Écart"},
			"source_type": {"official": "Official", "store": "Store", "review": "Review", "media": "Media", "research": "Research"},
		},
		Warnings: map[string]string{
			"title":            "Avertissements:",
			"sources_lt3":      "[WARN] %s: sources < 3",
			"missing_official": "[WARN] %s: source officielle manquante",
			"missing_third":       "[WARN] %s: source tierce manquante",
			"dropped_no_identity": "[WARN] ligne %d: écartée, nom d'entreprise/produit manquant",
			"dropped_evidence":    "[WARN] %s: écarté, %d source(s) sous le minimum de %d",
		},
	},
	"de": {
		Code: "de",
		SheetNames: map[model.Sheet]string{
			model.SheetSummary:       "Zusammenfassung",
			model.SheetBenchmark:     "Benchmark",
			model.SheetFeatureMatrix: "Feature-Matrix",
			model.SheetPricingGTM:    "Pricing-GTM",
			model.SheetSources:       "Quellen",
		},
		Headers: map[string]string{
			"problem_statement":             "Problemdefinition",
			"target_segment":                "Zielsegment",
			"method":                        "Methode",
			"scope":                         "Umfang",
			"top_findings":                  "Wichtigste Erkenntnisse",
			"strategic_implications":        "Strategische Implikationen",
			"rank":                          "Rang",
			"company_product":               "Unternehmen/Produkt",
			"category":                      "Kategorie(Direkt/Angrenzend/Ersatz)",
			"target_user":                   "Zielnutzer",
			"core_jtbd":                     "Kern-JTBD",
			"platform":                      "Plattform",
			"geo_focus":                     "Geo-Fokus",
			"traction_score":                "Traction-Score(1-5)",
			"product_capability_score":      "Produktfähigkeits-Score(1-5)",
			"monetization_score":            "Monetarisierungs-Score(1-5)",
			"user_sentiment_score":          "Nutzerstimmungs-Score(1-5)",
			"execution_maturity_score":      "Reifegrad-Score(1-5)",
			"evidence_confidence_score":     "Evidenz-Score(1-5)",
			"weighted_total":                "Gewichtete Summe(0-5)",
			"key_strength":                  "Stärke",
			"key_weakness":                  "Schwäche",
			"threat_level":                  "Bedrohungsgrad",
			"l1_capability":                 "L1 Fähigkeit",
			"l2_module":                     "L2 Modul",
			"l3_feature":                    "L3 Feature",
			"our_status":                    "Unser Status(None/Planned/Live)",
			"competitor_coverage":           "Wettbewerbsabdeckung(0/1)",
			"parity_gap":                    "Paritätslücke",
			"importance":                    "Wichtigkeit(H/M/L)",
			"priority":                      "Priorität",
			"product":                       "Produkt",
			"pricing_model":                 "Preismodell",
			"entry_price":                   "Einstiegspreis",
			"top_tier_price":                "Top-Preis",
			"trial_freemium":                "Test/Freemium",
			"packaging_unit":                "Paketeinheit",
			"primary_channel":               "Hauptkanal(SEO/PLG/Sales/Partner)",
			"positioning_claim":             "Positionierungsversprechen",
			"observed_conversion_frictions": "Beobachtete Conversion-Hürden",
			"source_type":                   "Quellentyp(Official/Store/Review/Media/Research)",
			"url":                           "URL",
			"title":                         "Titel",
			"published_date":                "Veröffentlichungsdatum",
			"access_date":                   "Abrufdatum",
			"claim":                         "Aussage",
			"evidence_snippet":              "Evidenz-Auszug",
			"confidence":                    "Vertrauen(Hoch/Mittel/Niedrig)",
		},
		SummaryTemplates: []SummaryTemplate{
			{
				ProblemStatement:      "Marktdefinition",
				TargetSegment:         "Zu validierendes Kernsegment",
				Method:                "JTBD + Wettbewerbscluster + gewichtetes Scoring",
				TopFindings:           "Marktdefinition aus Brief/Repo-Kontext ergänzen",
				StrategicImplications: "Kategoriegrenze vor Scoring klären",
			},
			{
				ProblemStatement:      "Positionierungsstatement",
				TargetSegment:         "Priorisiertes GTM-Segment",
				Method:                "Relative Positionierung vs Direkt/Angrenzend/Ersatz",
				TopFindings:           "Definieren, worin konkurriert wird und worin nicht",
				StrategicImplications: "Scope- und Kategorie-Drift vermeiden",
			},
			{
				ProblemStatement:      "Strategische Implikationen",
				TargetSegment:         "Produkt- und GTM-Teams",
				Method:                "Gap-Synthese aus Benchmark und Feature-Matrix",
				TopFindings:           "Top 2-3 Umsetzungswetten priorisieren",
				StrategicImplications: "Benchmark in Roadmap-Entscheidungen überführen",
			},
		},
		Enums: map[string]map[string]string{
			"threat":     {"high": "Hoch", "medium": "Mittel", "low": "Niedrig"},
			"category":   {"direct": "Direkt", "adjacent": "Angrenzend", "substitute": "Ersatz"},
			"confidence": {"high": "Hoch", "med": "Mittel", "low": "Niedrig"},
			"our_status": {"none": "Kein", "planned": "Geplant", "live": "Live"},
			"parity_gap":  {"lead": "Vorsprung", "parity": "Parität", "partial": "Teilweise", "gap": "Lücke"},
			"source_type": {"official": "Official", "store": "Store", "review": "Review", "media": "Media", "research": "Research"},
		},
		Warnings: map[string]string{
			"title":            "Warnungen:",
			"sources_lt3":      "[WARN] %s: Quellen < 3",
			"missing_official": "[WARN] %s: offizielle Quelle fehlt",
			"missing_third":       "[WARN] %s: Drittquelle fehlt",
			"dropped_no_identity": "[WARN] Zeile %d: verworfen, Firmen-/Produktname fehlt",
			"dropped_evidence":    "[WARN] %s: verworfen, %d Quelle(n) unter dem Minimum von %d",
		},
	},
}
