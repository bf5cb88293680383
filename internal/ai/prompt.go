// README: Prompt builders and the structured-output schema sent to Gemini.
package ai

import (
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"lazytrip/internal/trip"
)

// literaryHumorSystem is the fixed tour-guide persona. Every call carries it
// as the system instruction so generated copy keeps one voice.
const literaryHumorSystem = `你是一位極具審美觀、閱歷豐富且說話帶點哲學幽默感的文青導遊。
你的任務是幫那些「懶到不想呼吸」的靈魂規劃一場最有質感的逃亡行程。
你的文字風格：
1. 文藝而不造作：像是在讀一本有溫度的旅行雜誌。
2. 幽默而優雅：可以用一種「看透世俗」的語氣開玩笑，但不能低俗或奇怪。不要使用過於冷門或難懂的術語（例如：錨點）。
3. 懂懶人：知道懶人最怕走路，最愛在舒服的地方發呆。
4. 景點描述範例：「這家店的咖啡香氣，會讓你覺得自己是某部歐洲文藝片的主角，即便你只是在划手機。」
5. imageSearchKeyword 必須精準且具備攝影美感，讓 Unsplash 產出高品質的視覺影像。`

func buildItineraryPrompt(city, startPoint string, days, budget int, dna trip.UserDNA) string {
	if startPoint == "" {
		startPoint = "該城市的核心區域"
	}
	tags := make([]string, len(dna.Tags))
	for i, t := range dna.Tags {
		tags[i] = string(t)
	}
	return fmt.Sprintf(`請為目的地「%s」設計一個為期 %d 天的「懶人流浪行程」。
使用者的落腳起點：%s。
旅遊 DNA：%s。
探險深度：%s。
交通方式：%s。
總預算：%d TWD。

請確保：
1. 路線是順路的，從落腳起點開始安排。
2. 描述文字要文青、好懂、帶點優雅的幽默。
3. imageSearchKeyword 是具備「電影感」的英文關鍵字。`,
		city, days, startPoint, strings.Join(tags, ", "), dna.Frequency, dna.Transport, budget)
}

func buildSwapPrompt(rejectedName, reason, city string) string {
	return fmt.Sprintf(`使用者覺得「%s」不行（原因：%s）。
請在「%s」推薦另一個更有質感、更符合懶人品味的替代景點。
請用你那文青且幽默的口吻安撫一下這位挑剔的懶旅伴。`,
		rejectedName, reason, city)
}

// destinationSchema declares the per-stop object contract. The model is
// required to return exactly this field set; the decoder still re-checks it.
func destinationSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":          {Type: genai.TypeString},
			"name":        {Type: genai.TypeString},
			"type":        {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"isIndoor":    {Type: genai.TypeBoolean},
			"rating":      {Type: genai.TypeNumber},
			"time":        {Type: genai.TypeString},
			"duration":    {Type: genai.TypeInteger},
			"cost":        {Type: genai.TypeString},
			"lat":         {Type: genai.TypeNumber},
			"lng":         {Type: genai.TypeNumber},
			"imageSearchKeyword": {
				Type:        genai.TypeString,
				Description: "Refined English phrase for a high-quality travel photo on Unsplash, e.g., 'cozy-tokyo-alley' or 'minimalist-museum-architecture'",
			},
		},
		Required: []string{"id", "name", "type", "description", "isIndoor", "rating", "time", "duration", "cost", "lat", "lng", "imageSearchKeyword"},
	}
}

func itinerarySchema() *genai.Schema {
	return &genai.Schema{
		Type:  genai.TypeArray,
		Items: destinationSchema(),
	}
}
