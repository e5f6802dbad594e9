package layout

import "fmt"

// EventKind 区分事件流中的结构事件与行内事件。
type EventKind int

const (
	EventStart EventKind = iota
	EventEnd
	EventText
	EventCode
	EventSoftBreak
	EventHardBreak
	// EventOther 表示布局不关心的事件（例如分割线、内联 HTML），直接忽略。
	EventOther
)

// TagKind 为 Start/End 事件携带的结构标签。
type TagKind int

const (
	TagOther TagKind = iota
	TagHeading
	TagParagraph
	TagCodeBlock
	TagList
	TagItem
	TagStrong
	TagEmphasis
)

// Tag 描述一个结构标签；Level 仅对标题有效（1..6）。
type Tag struct {
	Kind  TagKind `json:"kind"`
	Level int     `json:"level,omitempty"`
}

// Event 是外部标记解析器产出、布局驱动器消费的事件。
type Event struct {
	Kind EventKind `json:"kind"`
	Tag  Tag       `json:"tag"`
	Text string    `json:"text,omitempty"`
}

func Heading(level int) Tag { return Tag{Kind: TagHeading, Level: level} }

var (
	Paragraph = Tag{Kind: TagParagraph}
	CodeBlock = Tag{Kind: TagCodeBlock}
	List      = Tag{Kind: TagList}
	Item      = Tag{Kind: TagItem}
	Strong    = Tag{Kind: TagStrong}
	Emphasis  = Tag{Kind: TagEmphasis}
	OtherTag  = Tag{Kind: TagOther}
)

func Start(tag Tag) Event      { return Event{Kind: EventStart, Tag: tag} }
func End(tag Tag) Event        { return Event{Kind: EventEnd, Tag: tag} }
func Text(s string) Event      { return Event{Kind: EventText, Text: s} }
func Code(s string) Event      { return Event{Kind: EventCode, Text: s} }
func SoftBreak() Event         { return Event{Kind: EventSoftBreak} }
func HardBreak() Event         { return Event{Kind: EventHardBreak} }
func Other(label string) Event { return Event{Kind: EventOther, Text: label} }

func (t Tag) String() string {
	switch t.Kind {
	case TagHeading:
		return fmt.Sprintf("Heading(%d)", t.Level)
	case TagParagraph:
		return "Paragraph"
	case TagCodeBlock:
		return "CodeBlock"
	case TagList:
		return "List"
	case TagItem:
		return "Item"
	case TagStrong:
		return "Strong"
	case TagEmphasis:
		return "Emphasis"
	default:
		return "Other"
	}
}

func (e Event) String() string {
	switch e.Kind {
	case EventStart:
		return "Start(" + e.Tag.String() + ")"
	case EventEnd:
		return "End(" + e.Tag.String() + ")"
	case EventText:
		return fmt.Sprintf("Text(%q)", e.Text)
	case EventCode:
		return fmt.Sprintf("Code(%q)", e.Text)
	case EventSoftBreak:
		return "SoftBreak"
	case EventHardBreak:
		return "HardBreak"
	default:
		return fmt.Sprintf("Other(%q)", e.Text)
	}
}
