package systems

import (
	"image/color"
)

// MessageType defines the kinds of messages shown in the status log
type MessageType int

const (
	// MessageTypeNormal is for standard status lines (gray)
	MessageTypeNormal MessageType = iota
	// MessageTypeMaze is for facts about the loaded maze (gold)
	MessageTypeMaze
	// MessageTypeAlert is for warnings (bright yellow)
	MessageTypeAlert
	// MessageTypeSystem is for window and input events (purple)
	MessageTypeSystem
)

// ColoredMessage stores a message with its associated type
type ColoredMessage struct {
	Text string
	Type MessageType
}

// GetColor returns the color for the message based on its type
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeMaze:
		return color.RGBA{218, 165, 32, 255} // Gold
	case MessageTypeAlert:
		return color.RGBA{255, 255, 0, 255} // Bright Yellow
	case MessageTypeSystem:
		return color.RGBA{186, 85, 211, 255} // Medium Orchid
	default:
		return color.RGBA{200, 200, 200, 255} // Light Gray
	}
}
