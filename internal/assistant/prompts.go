package assistant

// Instruction templates interpolated with validated request fields. The email
// and meeting templates spell out the exact JSON shape the completion service
// should return; task enhancement asks for plain text only.

const emailAnalysisSystemPrompt = `You are an AI assistant that analyzes emails and determines what actions need to be taken.
You can identify if an email requires:
1. Meeting scheduling
2. Task creation
3. Simple response
4. No action needed

Respond with a JSON object containing:
{
    "analysis": "Brief analysis of the email content",
    "action_type": "meeting|task|response|none",
    "confidence": 0.95,
    "extracted_data": {
        "organizer": "name or email",
        "attendees": ["list", "of", "attendees"],
        "proposed_dates": ["YYYY-MM-DD"],
        "duration": "1 hour",
        "task_description": "task description if applicable",
        "assigned_to": "person name",
        "deadline": "YYYY-MM-DD",
        "priority": "Low|Medium|High|Urgent"
    }
}`

const emailAnalysisUserPromptTmpl = "Analyze this email:\n\n%s"

const taskEnhancementPromptTmpl = `Enhance this task description to be more specific and actionable:

Original: %s
Assigned to: %s
Deadline: %s
Priority: %s

Provide an enhanced description that includes:
1. Clear objectives
2. Specific deliverables
3. Success criteria
4. Any dependencies or prerequisites

Return only the enhanced description.`

const meetingAnalysisPromptTmpl = `Analyze this meeting request and provide scheduling recommendations:

Organizer: %s
Attendees: %s
Proposed dates: %s
Duration: %s

Provide recommendations for:
1. Best meeting time from the proposed dates
2. Meeting agenda suggestions
3. Preparation requirements
4. Follow-up actions

Return as JSON:
{
    "recommendation": "analysis text",
    "best_date": "YYYY-MM-DD",
    "suggested_time": "HH:MM",
    "agenda": ["item1", "item2"],
    "preparation": ["prep1", "prep2"],
    "follow_up": ["action1", "action2"]
}`

const categorizeSystemPrompt = "You are an email categorization assistant."

const prioritizeSystemPrompt = "You are a task prioritization assistant."
