package types

// ToolType is the closed catalog of sellable AI integrations.
type ToolType string

const (
  ToolTypeWhatsAppChatbot      ToolType = "whatsapp_chatbot"
  ToolTypeCustomerSupportAgent ToolType = "customer_support_agent"
  ToolTypeSocialMediaWriter    ToolType = "social_media_writer"
  ToolTypeCustomGPTBot         ToolType = "custom_gpt_bot"
  ToolTypeMiniAIWebsite        ToolType = "mini_ai_website"
  ToolTypeLocalLanguageChat    ToolType = "local_language_chat"
  ToolTypeEmailReplyGenerator  ToolType = "email_reply_generator"
  ToolTypeLeadCollector        ToolType = "lead_collector"
  ToolTypeAppointmentBooking   ToolType = "appointment_booking"
  ToolTypeAnalyticsDashboard   ToolType = "analytics_dashboard"
)

// ToolCatalogEntry describes one catalog item the way it is presented to the
// recommendation model: a stable numeric id, a display name and a one-line pitch.
type ToolCatalogEntry struct {
  ID            int
  Type          ToolType
  Name          string
  Description   string
}

// ToolCatalog is ordered by id 1-10; the recommendation prompt embeds it verbatim.
var ToolCatalog = []ToolCatalogEntry{
  {1, ToolTypeWhatsAppChatbot, "WhatsApp Chatbot", "Automate customer interactions through WhatsApp"},
  {2, ToolTypeCustomerSupportAgent, "Customer Support Agent", "AI-powered customer service automation"},
  {3, ToolTypeSocialMediaWriter, "Social Media Post Writer", "Generate engaging social media content"},
  {4, ToolTypeCustomGPTBot, "Custom GPT Bots", "Build specialized AI chatbots for specific purposes"},
  {5, ToolTypeMiniAIWebsite, "Mini AI Websites", "Simple AI-powered websites for small businesses"},
  {6, ToolTypeLocalLanguageChat, "Local Language AI Chat", "AI chat in Indian regional languages"},
  {7, ToolTypeEmailReplyGenerator, "Email Reply Generator", "Automate personalized email responses"},
  {8, ToolTypeLeadCollector, "Lead Collector AI", "Capture and qualify potential customer leads"},
  {9, ToolTypeAppointmentBooking, "Appointment Booking AI", "Automated scheduling and booking system"},
  {10, ToolTypeAnalyticsDashboard, "Business Analytics Dashboard", "Track business performance metrics"},
}

func IsValidToolType(t ToolType) bool {
  for _, entry := range ToolCatalog {
    if entry.Type == t {
      return true
    }
  }
  return false
}
