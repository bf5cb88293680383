// README: Canned dissatisfaction reasons for the swap sub-flow.
package trip

// SwapReason maps a short button label to the longer justification sent to the planner.
type SwapReason struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SwapReasons is the closed set offered by the reason picker.
func SwapReasons() []SwapReason {
	return []SwapReason{
		{Label: "太俗氣", Value: "太普通了，我不要當觀光客"},
		{Label: "懶得動", Value: "太遠了，我只想在附近流浪"},
		{Label: "預算低", Value: "荷包在哭泣，找個免費的靈魂出口"},
		{Label: "沒頻率", Value: "這個地方跟我今天的心情頻率不合"},
	}
}
