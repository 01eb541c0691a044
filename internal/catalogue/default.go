package catalogue

// DefaultEntryScene is where newly connected players appear.
const DefaultEntryScene = "蓝溪镇"

// DefaultAttributes returns a fresh copy of the starting attribute set.
func DefaultAttributes() map[string]int {
	return map[string]int{
		"灵力值": 100,
		"生命值": 100,
		"体力值": 100,
		"记忆值": 0,
		"梦想值": 0,
	}
}

// Default returns the built-in 众生之门 world. Servers without an asset
// directory configured run on this content.
func Default() *Catalogue {
	scenes := map[string]*Scene{
		"蓝溪镇": {
			ID:          "blue-town",
			Name:        "蓝溪镇",
			Description: "这是一个充满灵气的小镇，街道两旁是古色古香的建筑，空气中弥漫着淡淡的花香。你看到老君坐在茶馆前喝茶，小黑在旁边玩耍。",
			Exits:       map[string]string{"东": "森林", "西": "河流", "北": "道观"},
			NPCs:        []string{"老君", "小黑"},
			Items:       []string{"灵气结晶", "茶叶"},
		},
		"森林": {
			ID:          "forest",
			Name:        "森林",
			Description: "茂密的森林，阳光透过树叶洒下斑驳的光影。你听到鸟儿的歌声，偶尔传来小动物的叫声。",
			Exits:       map[string]string{"西": "蓝溪镇"},
			NPCs:        []string{},
			Items:       []string{"草药", "木材"},
		},
		"河流": {
			ID:          "river",
			Name:        "河流",
			Description: "清澈的河流，水流缓缓流淌。河边有几块光滑的石头，远处可以看到一座小桥。",
			Exits:       map[string]string{"东": "蓝溪镇"},
			NPCs:        []string{},
			Items:       []string{"鱼", "水灵石"},
		},
		"道观": {
			ID:          "temple",
			Name:        "道观",
			Description: "古朴的道观，门前有一棵巨大的银杏树。道观内传来淡淡的香火味。",
			Exits:       map[string]string{"南": "蓝溪镇"},
			NPCs:        []string{"无限"},
			Items:       []string{"道符", "丹药"},
		},
	}

	npcs := map[string]*NPC{
		"老君": {
			ID:          "laojun",
			Name:        "老君",
			Description: "一位仙风道骨的老者，穿着道袍，手持拂尘。",
			Dialogue: map[string]string{
				"问候": "你好啊，年轻人。欢迎来到蓝溪镇。",
				"任务": "最近森林里的灵气有点异常，你能帮我去看看吗？",
				"灵":  "灵是这个世界的核心，它无处不在，只是大多数人看不见而已。",
			},
			Tasks: []string{"调查森林灵气"},
		},
		"小黑": {
			ID:          "xiaohei",
			Name:        "小黑",
			Description: "一只可爱的黑猫，有着蓝色的眼睛。",
			Dialogue: map[string]string{
				"问候": "喵~（友好地看着你）",
				"玩耍": "小黑跳起来，想要和你玩耍。",
				"老君": "老君是个好人，他照顾了我很久。",
			},
			Tasks: []string{},
		},
		"无限": {
			ID:          "wuxian",
			Name:        "无限",
			Description: "一位身穿黑衣的男子，表情严肃，腰间挂着一把剑。",
			Dialogue: map[string]string{
				"问候": "嗯？你是新来的？",
				"修炼": "修炼之路漫长而艰辛，需要不断努力。",
				"任务": "道观后面的丹炉需要一些草药，你能帮我采集吗？",
			},
			Tasks: []string{"采集草药"},
		},
	}

	tasks := map[string]*Task{
		"调查森林灵气": {
			ID:           "task-1",
			Name:         "调查森林灵气",
			Description:  "老君让你去森林调查灵气异常的原因。",
			Giver:        "老君",
			Status:       "available",
			Reward:       map[string]int{"灵力值": 50, "记忆值": 20},
			Requirements: map[string]string{"地点": "森林"},
		},
		"采集草药": {
			ID:           "task-2",
			Name:         "采集草药",
			Description:  "无限需要你去森林采集一些草药。",
			Giver:        "无限",
			Status:       "available",
			Reward:       map[string]int{"灵力值": 30, "体力值": 20},
			Requirements: map[string]string{"地点": "森林"},
		},
	}

	items := map[string]*Item{
		"灵气结晶": {Name: "灵气结晶", Effects: map[string]int{"灵力值": 10}},
		"草药":   {Name: "草药", Effects: map[string]int{"生命值": 15}},
		"木材":   {Name: "木材", Effects: map[string]int{"体力值": 10}},
		"鱼":    {Name: "鱼", Effects: map[string]int{"生命值": 20}},
		"水灵石":  {Name: "水灵石", Effects: map[string]int{"灵力值": 15}},
		"道符":   {Name: "道符", Effects: map[string]int{"灵力值": 25}},
		"丹药":   {Name: "丹药", Effects: map[string]int{"生命值": 30, "灵力值": 20}},
		"茶叶":   {Name: "茶叶", Effects: map[string]int{"梦想值": 5}},
	}

	// The built-in content is known good; validation cannot fail here.
	c, err := New(scenes, npcs, tasks, items, DefaultEntryScene)
	if err != nil {
		panic(err)
	}
	return c
}
