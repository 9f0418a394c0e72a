package catalog

import "chonapi/internal/model"

func txt(en, zh string) model.Text {
	return model.Text{EN: en, ZH: zh}
}

func opt(id, en, zh string) model.Option {
	return model.Option{ID: id, Text: txt(en, zh)}
}

func scale(minEn, minZh, maxEn, maxZh string) *model.ScaleLabels {
	return &model.ScaleLabels{Min: txt(minEn, minZh), Max: txt(maxEn, maxZh)}
}

// questions is the full immutable catalog. IDs are stable; menus
// reference them by ID and several menus share entries.
var questions = []model.Question{
	{
		ID:   1,
		Kind: model.QuestionKindSingleChoice,
		Text: txt("What’s your biological sex?", "您的生理性别是什么？"),
		Options: []model.Option{
			opt("A", "Female", "女"),
			opt("B", "Male", "男"),
		},
	},
	{
		ID:   2,
		Kind: model.QuestionKindSingleChoice,
		Text: txt("What is your age range?", "您的年龄是？"),
		Options: []model.Option{
			opt("A", "Under 18", "18岁以下"),
			opt("B", "18–24", "18–24"),
			opt("C", "25–34", "25–34"),
			opt("D", "35–44", "35–44"),
			opt("E", "45–54", "45–54"),
			opt("F", "55–64", "55–64"),
			opt("G", "65 or above", "65岁及以上"),
		},
	},
	{
		ID:   3,
		Kind: model.QuestionKindFreeText,
		Text: txt("Where are you currently based?", "您目前所在的国家或地区是？"),
	},
	{
		ID:   4,
		Kind: model.QuestionKindSingleChoice,
		Text: txt("Have you worked in a for-profit corporate setting, currently or in the past?", "您目前或过去是否曾在营利性企业环境中工作过？"),
		Options: []model.Option{
			opt("A", "Yes", "是"),
			opt("B", "No", "否"),
		},
	},
	{
		ID:   5,
		Kind: model.QuestionKindSingleChoice,
		Text: txt("How would you describe your racial or ethnic background?", "您如何描述您的种族或民族背景？"),
		Options: []model.Option{
			opt("A", "African descent", "非洲裔"),
			opt("B", "White / European descent", "白人/欧洲裔"),
			opt("C", "Asian", "亚裔/亚洲人"),
			opt("D", "Hispanic / Latino / Latin American", "西班牙裔/拉丁美洲裔"),
			opt("E", "Middle Eastern / North African", "中东人/北非人"),
			opt("F", "Indigenous peoples / Pacific Islander", "原住民/太平洋岛民"),
			opt("G", "Mixed / Multiracial", "混血/多民族"),
			opt("H", "Other", "其他"),
			opt("I", "Prefer not to say", "不愿回答"),
		},
	},
	{
		ID:   6,
		Kind: model.QuestionKindFreeText,
		Text: txt("Please enter your professional contact to allow us to verify your identity.", "请输入您的职业联系方式，以便验证身份。"),
	},
	{
		ID:   7,
		Kind: model.QuestionKindSingleChoice,
		Text: txt("How long have you been in a managerial or leadership role?", "您在管理或领导岗位上有多少年的工作经验？"),
		Options: []model.Option{
			opt("A", "1–3 years", "1–3 年"),
			opt("B", "4–6 years", "4–6 年"),
			opt("C", "7–9 years", "7–9 年"),
			opt("D", "10+ years", "10 年以上"),
		},
	},
	{
		ID:   8,
		Kind: model.QuestionKindSingleChoice,
		Text: txt("Which industry or business sector does your company operate in?", "贵公司属于哪个行业或业务领域？"),
		Options: []model.Option{
			opt("A", "Consumer Goods & Retail", "消费品和零售"),
			opt("B", "Education & Business Professional Services", "教育和商业专业服务"),
			opt("C", "Energy & Utilities", "能源和公用事业"),
			opt("D", "Entertainment & Media", "娱乐和媒体"),
			opt("E", "Financial Services", "金融服务"),
			opt("F", "Government, Nonprofits & Public Services", "政府、非营利和公共服务"),
			opt("G", "Healthcare & Pharmaceuticals", "医疗保健和制药"),
			opt("H", "Industrial Production & Manufacturing", "工业生产和制造"),
			opt("I", "Real Estate & Construction", "房地产和建筑"),
			opt("J", "Technology & Telecommunications", "技术和电信"),
			opt("K", "Transportation & Logistics", "运输和物流"),
		},
	},
	{
		ID:   9,
		Kind: model.QuestionKindSingleChoice,
		Text: txt("What is your company's total employee headcount?", "贵公司的员工总人数是多少？"),
		Options: []model.Option{
			opt("A", "Fewer than 50", "少于 50 人"),
			opt("B", "50–249", "50–249"),
			opt("C", "250–999", "250–999"),
			opt("D", "1,000–9,999", "1,000–9,999"),
			opt("E", "10,000–50,000", "10,000–50,000"),
			opt("F", "50,000 or more", "50,000及以上"),
		},
	},
	{
		ID:   10,
		Kind: model.QuestionKindSingleChoice,
		Text: txt("What is the approximate annual revenue of your company?", "贵公司的年营业收入大约是多少？"),
		Options: []model.Option{
			opt("A", "Less than $1 million", "少于500万"),
			opt("B", "$1–10 million", "500–5,000万"),
			opt("C", "$10–50 million", "5,000–5亿"),
			opt("D", "$50–500 million", "5亿–50亿"),
			opt("E", "$500 million–$5 billion", "50亿–500亿"),
			opt("F", "Over $10 billion", "超过500亿"),
		},
	},
	{
		ID:   11,
		Kind: model.QuestionKindSingleChoice,
		Text: txt("What is the approximate size of your span of control?", "您的管理规模是多少？"),
		Options: []model.Option{
			opt("A", "1–5 people", "1–5人"),
			opt("B", "6–20 people", "6–20人"),
			opt("C", "20–50 people", "20–50人"),
			opt("D", "50+ people", "50人以上"),
		},
	},
	{
		ID:          12,
		Kind:        model.QuestionKindScale,
		Text:        txt("What’s the decision-making structure in your company?", "您如何描述贵公司的决策体系？"),
		ScaleLabels: scale("Highly centralized", "高度集中化", "Flexibly adaptive", "灵活变通"),
	},
	{
		ID:          13,
		Kind:        model.QuestionKindScale,
		Text:        txt("What should be the primary basis of authority in your company?", "贵司的决策权应该如何决定？"),
		Tags:        []model.TraitLabel{model.TraitObjectivity},
		ScaleLabels: scale("Policies & Command", "政策和指挥", "Individual’s ability", "个人能力"),
	},
	{
		ID:          14,
		Kind:        model.QuestionKindScale,
		Text:        txt("How well-organized is your team structure?", "您的团队结构有多高效？"),
		Tags:        []model.TraitLabel{model.TraitObjectivity, model.TraitCoreEndurance},
		ScaleLabels: scale("Not organized", "缺乏组织性", "Very well-organized", "组织性强"),
	},
	{
		ID:          15,
		Kind:        model.QuestionKindScale,
		Text:        txt("What’s your team’s level of communication and collaboration?", "您的团队的沟通与协作水平如何？"),
		Tags:        []model.TraitLabel{model.TraitObjectivity, model.TraitSocialIntelligence},
		ScaleLabels: scale("Very poor – Lack communication & efficiency", "非常差 — 缺乏沟通和效率", "Excellent – Great communication & efficiency", "非常好 — 极好的沟通并高效"),
	},
	{
		ID:          16,
		Kind:        model.QuestionKindScale,
		Text:        txt("What’s your experience in establishing trust with business partners?", "您与客户建立信任的经历如何？"),
		Tags:        []model.TraitLabel{model.TraitSocialIntelligence},
		ScaleLabels: scale("Very poor – significant challenges", "非常差 – 极大挑战", "Excellent – effective and trusted", "非常好 – 有效、可信"),
	},
	{
		ID:          17,
		Kind:        model.QuestionKindScale,
		Text:        txt("Is your team effective at understanding client or market needs?", "贵司在理解客户或市场方面如何？"),
		Tags:        []model.TraitLabel{model.TraitSocialIntelligence},
		ScaleLabels: scale("Very poor – insufficient understanding", "非常差 – 不充分了解", "Excellent – exceeds expectations", "非常好 – 超出预期"),
	},
	{
		ID:          18,
		Kind:        model.QuestionKindScale,
		Text:        txt("Is responsibility important in business projects?", "责任感对于商业项目重要吗？"),
		Tags:        []model.TraitLabel{model.TraitObjectivity, model.TraitDedication},
		ScaleLabels: scale("Not important at all", "完全不重要", "Extremely important", "极其重要"),
	},
	{
		ID:          19,
		Kind:        model.QuestionKindScale,
		Text:        txt("Are empathy and communication important in business relationships?", "同理心和沟通能力在商业关系中重要吗？"),
		Tags:        []model.TraitLabel{model.TraitDedication, model.TraitSocialIntelligence},
		ScaleLabels: scale("Not important at all", "完全不重要", "Extremely important", "极其重要"),
	},
	{
		ID:          20,
		Kind:        model.QuestionKindScale,
		Text:        txt("Does your company value “soft skills” of responsibility, empathy, and communication?", "贵司认可软实力（例如责任心、同理心、沟通能力）吗？"),
		TextLife:    txt("Does your team value “soft skills” of responsibility, empathy, and communication?", "您所在的团队是否认可责任心、同理心、沟通能力等软实力？"),
		Tags:        []model.TraitLabel{model.TraitDedication},
		ScaleLabels: scale("Not recognized at all", "完全不认可", "Highly recognized and utilized", "高度认可和利用"),
	},
	{
		ID:          21,
		Kind:        model.QuestionKindScale,
		Text:        txt("Are men and women equally supported in balancing work and family?", "男性和女性是否在平衡工作与家庭方面得到了同等支持？"),
		TagsMale:    []model.TraitLabel{model.TraitObjectivity},
		TagsFemale:  []model.TraitLabel{model.TraitSelfAwareness},
		ScaleLabels: scale("No, one is significantly less supported", "不是，其一得到的很少同等支持", "Yes, equally supported", "是的，两种性别都得到了平等支持"),
	},
	{
		ID:          22,
		Kind:        model.QuestionKindScale,
		Text:        txt("Is providing support and social bonding for working mothers important?", "为职场母亲提供情感支持和社交重要吗？"),
		TagsMale:    []model.TraitLabel{model.TraitDedication},
		TagsFemale:  []model.TraitLabel{model.TraitSelfAwareness},
		ScaleLabels: scale("Not important at all", "完全不重要", "Very important", "非常重要"),
	},
	{
		ID:          23,
		Kind:        model.QuestionKindScale,
		Text:        txt("How is your company’s current support for working mothers?", "贵司在您的一线领导下目前对职场母亲的支持程度是？"),
		TagsMale:    []model.TraitLabel{model.TraitDedication},
		TagsFemale:  []model.TraitLabel{model.TraitSelfAwareness},
		ScaleLabels: scale("Not supportive at all", "完全不支持", "Highly supportive", "高度支持"),
	},
	{
		ID:          24,
		Kind:        model.QuestionKindScale,
		Text:        txt("Do you use technology within your team?", "您在团队里会常用科技工具吗？"),
		ScaleLabels: scale("Not at all", "完全不使用", "Very effectively", "非常有效地使用"),
	},
	{
		ID:   25,
		Kind: model.QuestionKindSingleChoice,
		Text: txt("For the personality test result, we ask you to imagine yourself as the god or goddess of the business world. If you could change or create one thing, what would it be?", "关于性格测试结果，我们请您将自己想象成商界的创造神。如果您可以创造或改变以下任何一件事，您会选择什么？"),
		Options: []model.Option{
			opt("A", "Redistribute all corporate shares so that every individual owns a piece of every business", "重新分配公司股份，让每个人都能在每家企业中分一杯羹"),
			opt("B", "Create 72 versions of yourself, each mastering a different industry", "创造72个化身，每个精通一个不同的行业"),
			opt("C", "Transform into an omnipotent prophet that predicts and controls moves of everyone in the business world", "化身为全知预言家，精准预测并控制商业世界中每个人的行动"),
			opt("D", "Imbue every product with divine allure, making it irresistible to all", "赋予所有产品神圣吸引力，让所有人都无法抗拒"),
			opt("E", "Reconstruct the entire economic system to achieve absolute perfection and sustainability", "重塑所有经济体系，实现绝对完美与可持续发展"),
			opt("F", "Ensure that no matter what happens, I can always come up with a plan to stay ahead and outmaneuver my competitors", "确保无论发生什么，我永远有策略超越我的竞争对手"),
		},
	},
	{
		ID:          26,
		Kind:        model.QuestionKindScale,
		Text:        txt("Does logical thinking address emotional and life concerns?", "逻辑思维是否解决情感和生活问题？"),
		Tags:        []model.TraitLabel{model.TraitObjectivity, model.TraitEmotionalRegulation},
		ScaleLabels: scale("Not well - no link with emotions", "完全不行 – 毫无关系", "Extremely well - very effective", "非常好 – 极其有效"),
	},
	{
		ID:          27,
		Kind:        model.QuestionKindScale,
		Text:        txt("Do self-love and care for others require objective reasoning?", "自爱和关爱他人是否需要客观思维支持？"),
		Tags:        []model.TraitLabel{model.TraitObjectivity},
		ScaleLabels: scale("Strongly disagree", "非常不需要", "Strongly agree", "非常需要"),
	},
	{
		ID:          28,
		Kind:        model.QuestionKindScale,
		Text:        txt("How valuable are you staying updated with the professional field?", "了解行业领域信息对您来说有多大价值？"),
		TextLife:    txt("How valuable are you staying updated with interested fields?", "了解感兴趣的领域信息对您来说有多大价值？"),
		Tags:        []model.TraitLabel{model.TraitDedication},
		ScaleLabels: scale("Not valuable", "毫无价值", "Extremely valuable", "极具价值"),
	},
	{
		ID:          29,
		Kind:        model.QuestionKindScale,
		Text:        txt("How valuable are you posting and accessing new business deals?", "发布和获取商业合作对您来说有多大价值？"),
		TextLife:    txt("How valuable are you sharing your life and exploring new opportunities?", "您分享生活和探索新机会有多大价值？"),
		Tags:        []model.TraitLabel{model.TraitDedication},
		ScaleLabels: scale("Not valuable", "毫无价值", "Highly valuable", "极具价值"),
	},
	{
		ID:          30,
		Kind:        model.QuestionKindScale,
		Text:        txt("How valuable are you sharing maternal experiences and emotional support?", "分享育儿经验、提供情感支持对您来说有多大价值？"),
		Tags:        []model.TraitLabel{model.TraitDedication},
		ScaleLabels: scale("Not valuable", "毫无价值", "Extremely beneficial", "极其有益"),
	},
	{
		ID:          31,
		Kind:        model.QuestionKindScale,
		Text:        txt("How valuable are healthcare professionals’ medical advice for you?", "外部医疗专业人士提供医学建议有多大价值？"),
		Tags:        []model.TraitLabel{model.TraitDedication},
		ScaleLabels: scale("Not valuable", "毫无价值", "Extremely valuable", "极具价值"),
	},
	{
		ID:          32,
		Kind:        model.QuestionKindScale,
		Text:        txt("How valuable are visuospatial and logical training?", "视觉空间与逻辑训练有多大价值？"),
		Tags:        []model.TraitLabel{model.TraitObjectivity},
		ScaleLabels: scale("Not valuable", "毫无价值", "Extremely valuable", "极具价值"),
	},
	{
		ID:          33,
		Kind:        model.QuestionKindScale,
		Text:        txt("How engaging are self-customized kids’ avatars and tokens for interactions?", "促进互动的自定义儿童虚拟形象和代币有多大吸引力？"),
		Tags:        []model.TraitLabel{model.TraitSocialIntelligence},
		ScaleLabels: scale("Not engaging", "毫无价值", "Very engaging", "极具价值"),
	},
	{
		ID:          34,
		Kind:        model.QuestionKindScale,
		Text:        txt("How important is mentorship matching for mothers of the same industry?", "一个将业内母亲“导师匹配”的功能有多大重要性？"),
		Tags:        []model.TraitLabel{model.TraitSocialIntelligence},
		ScaleLabels: scale("Not important", "不重要", "Extremely important", "非常重要"),
	},
	{
		ID:          35,
		Kind:        model.QuestionKindScale,
		Text:        txt("How valuable is a company-specific AI for working mothers?", "一个为每家公司定制的职场母亲专用人工智能模型有多大价值？"),
		Tags:        []model.TraitLabel{model.TraitDedication},
		ScaleLabels: scale("Not valuable", "毫无价值", "Extremely valuable", "极具价值"),
	},
	{
		ID:          36,
		Kind:        model.QuestionKindScale,
		Text:        txt("How will AI support working parents in the next 5–10 years?", "未来5–10年内，人工智能怎么支持职场父母？"),
		Tags:        []model.TraitLabel{model.TraitObjectivity},
		ScaleLabels: scale("AI brings new challenges ahead", "带来全新挑战", "AI revolutionizes support for parents", "革新对父母的支持"),
	},
	{
		ID:   37,
		Kind: model.QuestionKindScale,
		Text: txt("How will incorporating motherhood improve client relationships?", "母亲这一身份的加入如何改善客户关系？"),
		// The source data tags this with a label outside the scored set;
		// it is preserved as-is and contributes to no statistic.
		Tags:        []model.TraitLabel{"情绪管理"},
		ScaleLabels: scale("Not effective", "毫无价值", "Extremely effective", "极具价值"),
	},
	{
		ID:          38,
		Kind:        model.QuestionKindScale,
		Text:        txt("Is a confidential child health-related record needed to verify mothers’ identity?", "是否需要一份与儿童健康相关的保密记录来核实母亲的身份？"),
		Tags:        []model.TraitLabel{model.TraitObjectivity},
		ScaleLabels: scale("Strongly oppose – utterly invasive", "强烈反对 – 侵犯隐私", "Strongly support – ensures safety and trust", "强烈支持 – 保障安全的基础"),
	},
	{
		ID:          39,
		Kind:        model.QuestionKindScale,
		Text:        txt("Does misuse by unintended users negatively affect trust?", "非目标用户滥用该平台是否会对信任度产生负面影响？"),
		Tags:        []model.TraitLabel{model.TraitObjectivity},
		ScaleLabels: scale("Definitely no – no trust risk", "绝对不 – 完全无风险", "Definitely yes – severely undermines trust", "绝对会 – 严重破坏信任"),
	},
	{
		ID:          40,
		Kind:        model.QuestionKindScale,
		Text:        txt("Should companies verify through HR that this platform is used by mothers only?", "公司是否应通过人力资源部门核实该平台仅供母亲使用？"),
		Tags:        []model.TraitLabel{model.TraitSelfAwareness},
		ScaleLabels: scale("Strongly oppose", "强烈反对", "Strongly support", "强烈支持"),
	},
	{
		ID:          41,
		Kind:        model.QuestionKindScale,
		Text:        txt("How important are mothers’ empathy and selflessness in leadership?", "母亲的同理心与无私对领导力有多重要？"),
		Tags:        []model.TraitLabel{model.TraitSocialIntelligence},
		ScaleLabels: scale("Not important at all", "完全不重要", "Extremely important", "非常重要"),
	},
	{
		ID:          42,
		Kind:        model.QuestionKindScale,
		Text:        txt("How important are mothers’ resilience and perseverance in leadership?", "母亲的韧性和毅力对领导力有多重要？"),
		Tags:        []model.TraitLabel{model.TraitCoreEndurance},
		ScaleLabels: scale("Not important at all", "完全不重要", "Extremely important", "非常重要"),
	},
	{
		ID:          43,
		Kind:        model.QuestionKindScale,
		Text:        txt("How important are mothers’ communication and listening in leadership?", "母亲的沟通与倾听能力对领导力有多重要？"),
		Tags:        []model.TraitLabel{model.TraitSocialIntelligence},
		ScaleLabels: scale("Not important at all", "完全不重要", "Extremely important", "非常重要"),
	},
	{
		ID:          44,
		Kind:        model.QuestionKindScale,
		Text:        txt("How important are mothers’ responsibility and accountability in leadership?", "母亲的责任感和担当对工作有多重要？"),
		Tags:        []model.TraitLabel{model.TraitObjectivity, model.TraitDedication},
		ScaleLabels: scale("Not important at all", "完全不重要", "Extremely important", "非常重要"),
	},
	{
		ID:          45,
		Kind:        model.QuestionKindScale,
		Text:        txt("Have you resolved challenges balancing leadership responsibilities with caregiving?", "您是否解决过平衡领导责任与照护他人之间的挑战？"),
		Tags:        []model.TraitLabel{model.TraitObjectivity, model.TraitCoreEndurance},
		ScaleLabels: scale("Never", "从未", "Yes, frequently", "经常"),
	},
	{
		ID:          46,
		Kind:        model.QuestionKindScale,
		Text:        txt("Has becoming a parent (or caregiver) influenced your leadership style?", "成为家长或照顾者对您的工作处事风格有多大影响？"),
		Tags:        []model.TraitLabel{model.TraitDedication},
		ScaleLabels: scale("No influence", "无影响", "Significantly changed it for the better", "显著地使之更好"),
	},
	{
		ID:          47,
		Kind:        model.QuestionKindScale,
		Text:        txt("How does motherhood impact leadership effectiveness in the workplace?", "母亲身份如何影响职场中的领导效果？"),
		Tags:        []model.TraitLabel{model.TraitDedication},
		ScaleLabels: scale("Negatively", "负面影响", "Positively", "正面影响"),
	},
	{
		ID:          48,
		Kind:        model.QuestionKindScale,
		Text:        txt("How does your company integrate mothers’ leadership qualities into its pipeline?", "您所在的公司如何在建设中包括母亲的领导力特质？"),
		Tags:        []model.TraitLabel{model.TraitDedication},
		ScaleLabels: scale("Poorly", "做得不好", "Very well", "做得很好"),
	},
	{
		ID:          49,
		Kind:        model.QuestionKindScale,
		Text:        txt("Do you pay attention to the emotional well-being of working mothers?", "您是否关注职场母亲的情绪状态？"),
		Tags:        []model.TraitLabel{model.TraitSocialIntelligence},
		ScaleLabels: scale("Not at all – I don’t pay attention to this", "完全不关注", "Very much – I actively offer support", "非常关注 – 主动提供支持"),
	},
	{
		ID:          50,
		Kind:        model.QuestionKindScale,
		Text:        txt("Do you recognize when a mother employee experiences emotional difficulties?", "您是否能识别职场母亲情绪方面的困难？"),
		Tags:        []model.TraitLabel{model.TraitDedication, model.TraitEmotionalRegulation},
		ScaleLabels: scale("Not equipped at all – I never consider this", "完全无准备 – 从未考虑", "Very equipped – I can identify and address it appropriately", "准备充分 – 能识别并妥善处理"),
	},
	{
		ID:          51,
		Kind:        model.QuestionKindScale,
		Text:        txt("Does your mother’s role influence your understanding of leadership in childhood?", "您的母亲是否影响了您童年时期对领导力的认知？"),
		Tags:        []model.TraitLabel{model.TraitSelfAwareness},
		ScaleLabels: scale("Not at all", "完全没有", "Very strongly", "非常强烈"),
	},
	{
		ID:   52,
		Kind: model.QuestionKindFreeText,
		Text: txt("How many children do you have or are expecting to have?", "您有或预计有多少个孩子？"),
	},
	{
		ID:   53,
		Kind: model.QuestionKindMultiChoice,
		Text: txt("During which weeks of your pregnancy did you experience noticeable morning sickness? (Select all that apply)", "在怀孕的哪些周数期间，您经历了明显的妊娠反应？（可多选）"),
		Options: []model.Option{
			opt("A", "I did not experience noticeable morning sickness", "我没有经历明显的妊娠反应"),
			opt("B", "Weeks 4–8", "第4至第8周"),
			opt("C", "Weeks 9-12", "第9至第12周"),
			opt("D", "Weeks 13-20", "第13至第20周"),
			opt("E", "Weeks 21-28", "第21至第28周"),
			opt("F", "Weeks 29-36", "第29至第36周"),
			opt("G", "Weeks 37-40", "第37至第40周"),
			opt("H", "I can't remember", "我记不清了"),
		},
		Exclusive: []string{"A"},
	},
	{
		ID:   54,
		Kind: model.QuestionKindFreeText,
		Text: txt("What was your youngest child’s birth weight?", "您最小胎宝宝的出生体重是多少？"),
	},
	{
		ID:   55,
		Kind: model.QuestionKindSingleChoice,
		Text: txt("How long was your maternity leave? (If applicable)", "您的产假有多长时间？（如有的话）"),
		Options: []model.Option{
			opt("A", "<8 weeks", "少于8周"),
			opt("B", "8–14 weeks", "8–14周"),
			opt("C", "15–26 weeks", "15–26周"),
			opt("D", "27–52 weeks", "27–52周"),
			opt("E", ">1 year", "超过1年"),
		},
	},
	{
		ID:   56,
		Kind: model.QuestionKindSingleChoice,
		Text: txt("Did you receive postpartum care services?", "您是否接受了产后护理或入住了月子中心？"),
		Options: []model.Option{
			opt("A", "No", "否"),
			opt("E", "Yes", "是"),
		},
	},
	{
		ID:   57,
		Kind: model.QuestionKindFreeText,
		Text: txt("Postpartum emotion in one word", "一个词形容您的产后状态"),
	},
	{
		ID:   58,
		Kind: model.QuestionKindFreeText,
		Text: txt("Motherhood experience in one word", "一个词形容您作为母亲的状态"),
	},
	{
		ID:          59,
		Kind:        model.QuestionKindScale,
		Text:        txt("How involved are you with your previous social life from work?", "自己与以往工作的社交联系程度如何？"),
		TextLife:    txt("How involved are you with your previous social life?", "自己与以往的社交联系程度如何？"),
		Tags:        []model.TraitLabel{model.TraitSocialIntelligence},
		ScaleLabels: scale("Not involved at all", "完全不参与", "Very involved", "非常投入"),
	},
	{
		ID:          60,
		Kind:        model.QuestionKindScale,
		Text:        txt("How well does your work arrangement support your needs?", "您的工作安排对您有多大支持作用？"),
		TextLife:    txt("How well does your life arrangement support your needs?", "您的生活安排对您有多大支持作用？"),
		ScaleLabels: scale("Not supportive at all", "完全不支持", "Extremely supportive", "非常支持"),
	},
	{
		ID:          61,
		Kind:        model.QuestionKindScale,
		Text:        txt("How connected are you to your professional identity?", "您对自己的职业身份感有多强？"),
		TextLife:    txt("How connected are you to your personal identity?", "您对自己的个人身份感有多强？"),
		Tags:        []model.TraitLabel{model.TraitSelfAwareness},
		ScaleLabels: scale("Not connected – motherhood is full priority", "完全不强 – 母亲角色优先", "Very connected – profession is important", "非常强 – 职业身份很重要"),
	},
	{
		ID:          62,
		Kind:        model.QuestionKindScale,
		Text:        txt("How has motherhood impacted your career progression?", "母亲身份对您的职业发展或晋升机会有何影响？"),
		TextLife:    txt("How has motherhood impacted your personal development?", "母亲身份对您的个人发展有何影响？"),
		ScaleLabels: scale("Very negative – significantly hindered", "非常负面 – 明显阻碍", "Very positive – enhanced opportunities", "非常积极 – 提升机会"),
	},
	{
		ID:          63,
		Kind:        model.QuestionKindScale,
		Text:        txt("How is your work-life balance supported by your company?", "您的工作与生活平衡如何被贵司支持？"),
		TextLife:    txt("How is your life balance supported by your community?", "您的生活平衡如何被社区支持？"),
		Tags:        []model.TraitLabel{model.TraitSelfAwareness},
		ScaleLabels: scale("Not capable of being supported", "完全不能被支持", "Extremely supported", "非常能被支持"),
	},
	{
		ID:          64,
		Kind:        model.QuestionKindScale,
		Text:        txt("How has motherhood influenced your leadership style?", "成为母亲如何影响您的领导风格？"),
		Tags:        []model.TraitLabel{model.TraitEmotionalRegulation},
		ScaleLabels: scale("Negative", "消极影响", "Positive", "积极影响"),
	},
	{
		ID:          65,
		Kind:        model.QuestionKindScale,
		Text:        txt("How has motherhood influenced your resilience against stress?", "成为母亲如何影响您的抗压能力？"),
		Tags:        []model.TraitLabel{model.TraitCoreEndurance, model.TraitEmotionalRegulation},
		ScaleLabels: scale("Much less – harder to manage stress now", "更难应对压力", "Much more – strengthened my resilience", "增强了我的韧性"),
	},
	{
		ID:          66,
		Kind:        model.QuestionKindScale,
		Text:        txt("How motivated do you feel to pursue career growth?", "您职业发展的动力有多强？"),
		TextLife:    txt("How motivated do you feel to pursue personal growth?", "您个人发展的动力有多强？"),
		Tags:        []model.TraitLabel{model.TraitCoreEndurance},
		ScaleLabels: scale("Not motivated at all", "完全没有", "Very motivated", "非常强"),
	},
	{
		ID:          67,
		Kind:        model.QuestionKindScale,
		Text:        txt("How satisfied are you with your work-life balance?", "您对您的工作与生活平衡满意吗？"),
		TextLife:    txt("How satisfied are you with your life balance?", "您对您的生活平衡满意吗？"),
		Tags:        []model.TraitLabel{model.TraitSelfAwareness},
		ScaleLabels: scale("Very dissatisfied", "非常不满意", "Very satisfied", "非常满意"),
	},
	{
		ID:          68,
		Kind:        model.QuestionKindScale,
		Text:        txt("Are your needs as a mother taken into account during workplace decisions?", "您作为母亲的需求是否在职场决策中被考虑到？"),
		TextLife:    txt("Are your needs as a mother taken into account during community decisions?", "您作为母亲的需求是否在社区决策中被考虑到？"),
		Tags:        []model.TraitLabel{model.TraitSelfAwareness},
		ScaleLabels: scale("Never – completely overlooked", "从未 – 完全未被考虑", "Always – consistently considered", "总是 – 经常被考虑"),
	},
	{
		ID:          69,
		Kind:        model.QuestionKindScale,
		Text:        txt("How connected do you feel with other mothers through your work?", "您在工作中与其他母亲的联系如何？"),
		TextLife:    txt("How connected do you feel with other mothers through your life?", "您在生活与其他母亲的联系如何？"),
		Tags:        []model.TraitLabel{model.TraitSocialIntelligence},
		ScaleLabels: scale("Very disconnected — no connection", "完全没有联系", "Very connected – strong networks", "联系紧密 – 有很强的网络"),
	},
	{
		ID:          70,
		Kind:        model.QuestionKindScale,
		Text:        txt("Do you want to connect with other mothers through your profession?", "您是否想在工作中与其他职场母亲建立联系？"),
		TextLife:    txt("Do you want to connect with other mothers through your lifestyle?", "您是否想在生活与其他母亲建立联系？"),
		Tags:        []model.TraitLabel{model.TraitSocialIntelligence},
		ScaleLabels: scale("Never", "从不", "Always", "经常"),
	},
	{
		ID:          71,
		Kind:        model.QuestionKindScale,
		Text:        txt("How valuable is showcasing your previous work?", "展示您以往的工作有多大价值？"),
		Tags:        []model.TraitLabel{model.TraitSelfAwareness},
		ScaleLabels: scale("Not valuable at all", "毫无价值", "Extremely valuable", "极具价值"),
	},
	{
		ID:          72,
		Kind:        model.QuestionKindScale,
		Text:        txt("How helpful is cognitive ability to enhance your problem-solving abilities?", "更强的认知能力对于提升您的解决问题能力有多大帮助？"),
		Tags:        []model.TraitLabel{model.TraitObjectivity},
		ScaleLabels: scale("Not helpful at all", "完全无帮助", "Extremely helpful", "非常有帮助"),
	},
	{
		ID:          73,
		Kind:        model.QuestionKindScale,
		Text:        txt("Are you prepared for motherhood beforehand?", "您成为母亲前心理准备如何？"),
		Tags:        []model.TraitLabel{model.TraitCoreEndurance},
		ScaleLabels: scale("Not prepared at all", "完全没有准备", "Very prepared", "准备非常充分"),
	},
	{
		ID:          74,
		Kind:        model.QuestionKindScale,
		Text:        txt("Did motherhood change your personal values?", "母亲身份是否改变了个人价值？"),
		Tags:        []model.TraitLabel{model.TraitSelfAwareness},
		ScaleLabels: scale("No change", "没有改变", "Completely", "完全改变"),
	},
	{
		ID:          75,
		Kind:        model.QuestionKindScale,
		Text:        txt("Does your family or community support you in motherhood?", "在成为母亲的过程中，家人或社群对您支持吗？"),
		Tags:        []model.TraitLabel{model.TraitSocialIntelligence},
		ScaleLabels: scale("Not supported at all", "完全没有支持", "Extremely supported", "非常支持"),
	},
	{
		ID:          76,
		Kind:        model.QuestionKindScale,
		Text:        txt("Did motherhood bring emotional fulfillment to your life?", "母亲身份是否为您带来了情感满足？"),
		Tags:        []model.TraitLabel{model.TraitDedication},
		ScaleLabels: scale("No emotion at all", "完全没有支持", "Extremely fulfilling", "非常满足"),
	},
	{
		ID:          77,
		Kind:        model.QuestionKindScale,
		Text:        txt("Did motherhood make you more emotionally strong?", "母亲身份让你情绪上更坚强了吗？"),
		Tags:        []model.TraitLabel{model.TraitEmotionalRegulation, model.TraitCoreEndurance},
		ScaleLabels: scale("Much weaker", "明显减弱", "Much stronger", "显著增强"),
	},
	{
		ID:          78,
		Kind:        model.QuestionKindScale,
		Text:        txt("Did motherhood change your ability to set boundaries?", "母亲身份是否影响了您设定边界的能力？"),
		Tags:        []model.TraitLabel{model.TraitSelfAwareness},
		ScaleLabels: scale("Significantly weakened", "显著减弱", "Improved greatly", "显著提升"),
	},
	{
		ID:          79,
		Kind:        model.QuestionKindScale,
		Text:        txt("Do you feel pressured to meet external expectations of motherhood?", "您是否感受到外界对母亲身份的期待压力？"),
		Tags:        []model.TraitLabel{model.TraitSelfAwareness},
		ScaleLabels: scale("Never", "从不", "Always", "总是"),
	},
	{
		ID:          80,
		Kind:        model.QuestionKindScale,
		Text:        txt("Are you satisfied with the balance between mother and self?", "您对母亲身份与自我之间的平衡是否满意？"),
		Tags:        []model.TraitLabel{model.TraitSelfAwareness},
		ScaleLabels: scale("Very dissatisfied", "非常不满意", "Very satisfied", "非常满意"),
	},
	{
		ID:          81,
		Kind:        model.QuestionKindScale,
		Text:        txt("Does your company foster professional growth and well-being?", "贵司是否同时重视职业发展和身心健康？"),
		TextLife:    txt("Does your team support both professional growth and overall well-being?", "您的团队是否支持职业发展和身心健康？"),
		Tags:        []model.TraitLabel{model.TraitSelfAwareness},
		ScaleLabels: scale("Not supportive at all", "完全不重视", "Very supportive", "非常重视"),
	},
	{
		ID:          82,
		Kind:        model.QuestionKindScale,
		Text:        txt("Do you build meaningful relationships through work?", "您在工作中是否有建立有意义的关系的机会？"),
		TextLife:    txt("Do you build meaningful relationships through teamwork?", "您在团队工作中是否有建立有意义的关系的机会？"),
		Tags:        []model.TraitLabel{model.TraitSocialIntelligence},
		ScaleLabels: scale("None – mostly isolated interactions", "没有 – 多为孤立互动", "A lot – strong connections", "很多 – 多为良好关系"),
	},
	{
		ID:          83,
		Kind:        model.QuestionKindScale,
		Text:        txt("Do you experience acts of kindness in work?", "您在工作中是否感受到他人的善意之举？"),
		Tags:        []model.TraitLabel{model.TraitDedication},
		ScaleLabels: scale("Never", "从未", "Very frequently", "非常频繁"),
	},
	{
		ID:          84,
		Kind:        model.QuestionKindScale,
		Text:        txt("Do you support or care for colleagues?", "您是否会给予同事支持或关心？"),
		TextLife:    txt("Do you support or care for teammates?", "您是否会给予团队成员支持或关心？"),
		Tags:        []model.TraitLabel{model.TraitDedication},
		ScaleLabels: scale("Do not engage in offering support", "基本不提供支持", "Frequently offer support", "经常主动给予支持"),
	},
	{
		ID:          85,
		Kind:        model.QuestionKindScale,
		Text:        txt("Do you feel recognized and valued by your team?", "您是否在团队中感觉到被认可？"),
		Tags:        []model.TraitLabel{model.TraitSelfAwareness},
		ScaleLabels: scale("Never", "几乎从未被认可", "Always", "总是被认可"),
	},
	{
		ID:          86,
		Kind:        model.QuestionKindScale,
		Text:        txt("Does your company promote collaboration based on trust and respect?", "贵司是否鼓励基于信任与相互尊重的合作？"),
		TextLife:    txt("Does your team promote collaboration based on trust and respect?", "您的团队是否鼓励基于信任与相互尊重的合作？"),
		Tags:        []model.TraitLabel{model.TraitObjectivity, model.TraitDedication},
		ScaleLabels: scale("Does not at all", "几乎没有", "Strongly across all levels", "在所有层面都出色"),
	},
	{
		ID:          87,
		Kind:        model.QuestionKindScale,
		Text:        txt("Could you reach out to colleagues or managers when facing challenges?", "面对困难或需要帮助时，您能否与同事或上级沟通？"),
		TextLife:    txt("Could you reach out to teammates when facing challenges?", "面对困难或需要帮助时，您能否与团队成员沟通？"),
		Tags:        []model.TraitLabel{model.TraitSocialIntelligence, model.TraitEmotionalRegulation},
		ScaleLabels: scale("Very uncomfortable", "很不愿意", "Very comfortable", "非常自然"),
	},
	{
		ID:          88,
		Kind:        model.QuestionKindScale,
		Text:        txt("Is a people-centered work culture important?", "以人为本的企业文化是否重要？"),
		TextLife:    txt("Is a people-centered team culture important?", "以人为本的工作团队文化是否重要？"),
		Tags:        []model.TraitLabel{model.TraitSocialIntelligence},
		ScaleLabels: scale("Not important at all", "几乎不重要", "Extremely important", "非常重要"),
	},
	{
		ID:          89,
		Kind:        model.QuestionKindScale,
		Text:        txt("Do you feel motivated by a sense of belonging or team care?", "您是否因团队归属感或同事关怀提升工作积极性？"),
		TextLife:    txt("Do you feel motivated by a sense of belonging or team care?", "您是否因团队归属感或团队成员关怀提升工作积极性？"),
		Tags:        []model.TraitLabel{model.TraitEmotionalRegulation},
		ScaleLabels: scale("Never", "从未", "Very often", "经常"),
	},
}
