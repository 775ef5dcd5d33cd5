package catalog

// Seed returns the built-in course catalog. Item ids intentionally repeat
// across modules; completion tracking always uses the qualified key.
func Seed() []Course {
	return []Course{
		{
			ID:          "digital-literacy",
			Title:       "Digital Literacy Basics",
			Category:    "Technology",
			Level:       "Beginner",
			Duration:    "4 weeks",
			Rating:      4.8,
			Instructor:  "Asha Verma",
			Description: "Learn to use a smartphone, browse the internet safely and communicate online.",
			Modules: []Module{
				{
					ID:    "module-1",
					Title: "Getting Started with Smartphones",
					Items: []ModuleItem{
						{ID: "item-1", Title: "Parts of a Smartphone", Kind: KindVideo, Duration: "8 min", VideoURL: "https://videos.shaktiplatform.in/digital-literacy/m1-parts.mp4"},
						{ID: "item-2", Title: "Touch Gestures and Keyboards", Kind: KindVideo, Duration: "10 min", VideoURL: "https://videos.shaktiplatform.in/digital-literacy/m1-gestures.mp4"},
						{ID: "item-3", Title: "Smartphone Basics Notes", Kind: KindNotes, NotesURL: "https://notes.shaktiplatform.in/digital-literacy/m1-basics.pdf"},
						{
							ID: "item-4", Title: "Smartphone Basics Quiz", Kind: KindQuiz,
							Questions: []QuizQuestion{
								{
									ID:            "q1",
									Prompt:        "Which button is used to return to the home screen?",
									Options:       []string{"Volume button", "Home button", "Power button", "Camera button"},
									CorrectOption: 1,
									Explanation:   "The home button (or home gesture) always brings you back to the main screen.",
								},
								{
									ID:            "q2",
									Prompt:        "What does Wi-Fi let your phone do?",
									Options:       []string{"Charge faster", "Connect to the internet", "Take better photos", "Make the screen brighter"},
									CorrectOption: 1,
									Explanation:   "Wi-Fi is a wireless connection to the internet.",
								},
								{
									ID:            "q3",
									Prompt:        "Where do you install new apps from?",
									Options:       []string{"The camera", "The app store", "The gallery", "The dialer"},
									CorrectOption: 1,
									Explanation:   "New apps are installed from your phone's app store.",
								},
							},
						},
					},
				},
				{
					ID:    "module-2",
					Title: "Safe Internet Browsing",
					Items: []ModuleItem{
						{ID: "item-1", Title: "Searching the Web", Kind: KindVideo, Duration: "12 min", VideoURL: "https://videos.shaktiplatform.in/digital-literacy/m2-search.mp4"},
						{ID: "item-2", Title: "Spotting Fake News and Scams", Kind: KindVideo, Duration: "14 min", VideoURL: "https://videos.shaktiplatform.in/digital-literacy/m2-scams.mp4"},
						{ID: "item-3", Title: "Online Safety Checklist", Kind: KindNotes, NotesURL: "https://notes.shaktiplatform.in/digital-literacy/m2-safety.pdf"},
						{
							ID: "item-4", Title: "Internet Safety Quiz", Kind: KindQuiz,
							Questions: []QuizQuestion{
								{
									ID:            "q1",
									Prompt:        "Someone you don't know asks for your bank OTP on the phone. What should you do?",
									Options:       []string{"Share it to be polite", "Never share it and hang up", "Write it down for them", "Ask a friend to share it"},
									CorrectOption: 1,
									Explanation:   "An OTP is secret. A real bank never asks for it.",
								},
								{
									ID:            "q2",
									Prompt:        "A strong password is:",
									Options:       []string{"Your name", "123456", "A mix of letters, numbers and symbols", "Your birth year"},
									CorrectOption: 2,
									Explanation:   "Long mixed passwords are much harder to guess.",
								},
							},
						},
						{ID: "item-5", Title: "Practice: Help a Friend Search Safely", Kind: KindAssignment, AssignmentText: "Sit with a friend or family member and help them search for today's vegetable mandi prices. Note the steps you followed."},
					},
				},
			},
		},
		{
			ID:          "financial-literacy",
			Title:       "Money Matters: Financial Literacy",
			Category:    "Finance",
			Level:       "Beginner",
			Duration:    "3 weeks",
			Rating:      4.6,
			Instructor:  "Meena Kulkarni",
			Description: "Savings, bank accounts, UPI payments and small-business budgeting.",
			Modules: []Module{
				{
					ID:    "module-1",
					Title: "Banking Basics",
					Items: []ModuleItem{
						{ID: "item-1", Title: "Opening a Bank Account", Kind: KindVideo, Duration: "9 min", VideoURL: "https://videos.shaktiplatform.in/financial-literacy/m1-account.mp4"},
						{ID: "item-2", Title: "Savings and Interest Notes", Kind: KindNotes, NotesURL: "https://notes.shaktiplatform.in/financial-literacy/m1-savings.pdf"},
						{
							ID: "item-3", Title: "Banking Quiz", Kind: KindQuiz,
							Questions: []QuizQuestion{
								{
									ID:            "q1",
									Prompt:        "What document is most commonly needed to open a bank account?",
									Options:       []string{"Aadhaar card", "Train ticket", "School timetable", "Ration list"},
									CorrectOption: 0,
									Explanation:   "Aadhaar is the standard KYC document for bank accounts.",
								},
								{
									ID:            "q2",
									Prompt:        "Interest on savings is:",
									Options:       []string{"A fee you pay", "Money the bank pays you", "A type of loan", "A tax"},
									CorrectOption: 1,
									Explanation:   "Banks pay interest on the money you keep in savings.",
								},
							},
						},
					},
				},
				{
					ID:    "module-2",
					Title: "Digital Payments with UPI",
					Items: []ModuleItem{
						{ID: "item-1", Title: "Setting up UPI", Kind: KindVideo, Duration: "11 min", VideoURL: "https://videos.shaktiplatform.in/financial-literacy/m2-upi.mp4"},
						{ID: "item-2", Title: "Sending and Receiving Money", Kind: KindVideo, Duration: "10 min", VideoURL: "https://videos.shaktiplatform.in/financial-literacy/m2-transfer.mp4"},
						{
							ID: "item-3", Title: "UPI Quiz", Kind: KindQuiz,
							Questions: []QuizQuestion{
								{
									ID:            "q1",
									Prompt:        "Your UPI PIN should be shared with:",
									Options:       []string{"Nobody", "Shopkeepers", "Customer care callers", "Friends"},
									CorrectOption: 0,
									Explanation:   "The UPI PIN is only for you, like the key to your money.",
								},
								{
									ID:            "q2",
									Prompt:        "To RECEIVE money over UPI you need to:",
									Options:       []string{"Enter your PIN", "Share your UPI id or QR code", "Call the bank", "Send money first"},
									CorrectOption: 1,
									Explanation:   "Receiving never needs a PIN; entering a PIN always means money is leaving.",
								},
								{
									ID:            "q3",
									Prompt:        "A customer scans your QR and the app asks them for a PIN to 'receive' ₹500. This is:",
									Options:       []string{"Normal", "A scam", "A bank rule", "A discount"},
									CorrectOption: 1,
									Explanation:   "PIN entry authorises a payment out, never a receipt.",
								},
							},
						},
						{ID: "item-4", Title: "Practice: Make a Weekly Budget", Kind: KindAssignment, AssignmentText: "Write down your household income and expenses for one week and mark three places money could be saved."},
					},
				},
			},
		},
		{
			ID:          "online-selling",
			Title:       "Sell Your Products Online",
			Category:    "Entrepreneurship",
			Level:       "Intermediate",
			Duration:    "5 weeks",
			Rating:      4.9,
			Instructor:  "Rukmini Das",
			Description: "Photograph, price and list handmade products, and manage customer orders.",
			Modules: []Module{
				{
					ID:    "module-1",
					Title: "Preparing Your Product",
					Items: []ModuleItem{
						{ID: "item-1", Title: "Product Photography with a Phone", Kind: KindVideo, Duration: "15 min", VideoURL: "https://videos.shaktiplatform.in/online-selling/m1-photo.mp4"},
						{ID: "item-2", Title: "Writing a Good Description", Kind: KindNotes, NotesURL: "https://notes.shaktiplatform.in/online-selling/m1-description.pdf"},
						{ID: "item-3", Title: "Pricing Your Work", Kind: KindVideo, Duration: "12 min", VideoURL: "https://videos.shaktiplatform.in/online-selling/m1-pricing.mp4"},
						{
							ID: "item-4", Title: "Listing Quiz", Kind: KindQuiz,
							Questions: []QuizQuestion{
								{
									ID:            "q1",
									Prompt:        "The best background for a product photo is:",
									Options:       []string{"A busy street", "A plain, well-lit surface", "A dark room", "A moving vehicle"},
									CorrectOption: 1,
									Explanation:   "Plain backgrounds and daylight keep attention on the product.",
								},
								{
									ID:            "q2",
									Prompt:        "Your price should cover:",
									Options:       []string{"Only materials", "Materials, your time and delivery", "Whatever a neighbour charges", "Nothing, start free"},
									CorrectOption: 1,
									Explanation:   "Undercounting your own time is the most common pricing mistake.",
								},
							},
						},
					},
				},
				{
					ID:    "module-2",
					Title: "Handling Orders",
					Items: []ModuleItem{
						{ID: "item-1", Title: "Talking to Customers", Kind: KindVideo, Duration: "10 min", VideoURL: "https://videos.shaktiplatform.in/online-selling/m2-customers.mp4"},
						{ID: "item-2", Title: "Packing and Dispatch", Kind: KindVideo, Duration: "13 min", VideoURL: "https://videos.shaktiplatform.in/online-selling/m2-dispatch.mp4"},
						{
							ID: "item-3", Title: "Orders Quiz", Kind: KindQuiz,
							Questions: []QuizQuestion{
								{
									ID:            "q1",
									Prompt:        "When should you confirm an order with the buyer?",
									Options:       []string{"Never", "As soon as it is placed", "After a month", "Only if they call"},
									CorrectOption: 1,
									Explanation:   "Quick confirmation builds trust and repeat customers.",
								},
								{
									ID:            "q2",
									Prompt:        "If a product is out of stock you should:",
									Options:       []string{"Accept the order anyway", "Update the listing's stock", "Ignore messages", "Delete your account"},
									CorrectOption: 1,
									Explanation:   "Keeping stock numbers honest avoids cancelled orders.",
								},
							},
						},
						{ID: "item-4", Title: "Practice: List One Product", Kind: KindAssignment, AssignmentText: "Create one complete product listing: photo, description, price and stock count."},
					},
				},
			},
		},
	}
}
