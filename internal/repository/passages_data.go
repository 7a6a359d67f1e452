package repository

import "literacy_edu_backend/internal/model"

// readingCatalog returns the built-in Grade 7-8 reading passages. Texts
// are thematically connected to notable Canadian and world literature.
func readingCatalog() []model.Passage {
	return []model.Passage{
		{
			ID:     "fiction_1",
			Title:  "The Last Light",
			Grade:  "7-8",
			Type:   "Fiction - Short Story",
			Themes: []string{"Technology vs. humanity", "Experience and wisdom"},
			Text: `The old lighthouse keeper climbed the spiral stairs one last time, his weathered hands
gripping the iron railing. For forty-seven years, he had made this journey twice daily,
ensuring the beacon guided ships safely through the treacherous waters of Georgian Bay.

Tonight was different. The automation system would take over at midnight, rendering
his position obsolete. Progress, they called it. Efficiency. But Marcus knew what would
be lost—the human element, the watchful eye that could spot a struggling vessel before
any sensor could.

He reached the lamp room and gazed out at the darkening horizon. A storm was brewing
in the west, purple clouds gathering like an approaching army. His practiced eye noted
the barometric pressure, the wind direction, the unusual chop of the waves.

Below, the new control panel blinked with green lights, assuring everyone that all was
well. But Marcus had learned to trust his instincts over machinery. He picked up his
binoculars and scanned the water.

There—barely visible against the grey sky—a small sailboat, its mast tilting at a
dangerous angle. The automated system hadn't detected it; the vessel was too small,
too insignificant for its sensors.

Marcus reached for the radio and made the call that would save three lives that night.
The rescue helicopter arrived twenty minutes before the sailboat would have capsized.

As midnight approached, Marcus descended the stairs slowly. The automation system
hummed to life behind him, efficient and tireless. But for one more night, the human
lighthouse keeper had proven irreplaceable.`,
			Questions: []model.Question{
				{
					ID:       "q1",
					Type:     "comprehension",
					Skill:    "Main idea and theme",
					Question: "What is the central theme of this passage?",
					Options: []string{
						"Technology is always superior to human abilities",
						"The importance of experience and human judgment",
						"Lighthouses are no longer needed in modern times",
						"Older workers should resist retirement",
					},
					Correct:     1,
					Explanation: "The story emphasizes how Marcus's human experience and instincts detected something the automated system missed, highlighting the value of human judgment.",
				},
				{
					ID:       "q2",
					Type:     "inference",
					Skill:    "Making inferences",
					Question: "What can you infer about Marcus's feelings toward the automation system?",
					Options: []string{
						"He is excited about the new technology",
						"He feels the system is completely unreliable",
						"He has mixed feelings - accepting change but aware of its limitations",
						"He plans to sabotage the system",
					},
					Correct:     2,
					Explanation: "Marcus doesn't fight the change but demonstrates through his actions that he sees limitations in relying solely on automation.",
				},
				{
					ID:       "q3",
					Type:     "vocabulary",
					Skill:    "Context clues",
					Question: "In the passage, what does 'treacherous' most likely mean?",
					Options: []string{
						"Deep",
						"Dangerous",
						"Cold",
						"Beautiful",
					},
					Correct:     1,
					Explanation: "The context suggests the waters are dangerous, requiring a lighthouse to guide ships safely.",
				},
				{
					ID:       "q4",
					Type:     "analysis",
					Skill:    "Author's craft",
					Question: "Why does the author describe the storm clouds as 'gathering like an approaching army'?",
					Options: []string{
						"To show that a war is about to begin",
						"To create a sense of danger and tension",
						"To explain military history",
						"To describe the colour of the clouds",
					},
					Correct:     1,
					Explanation: "This simile creates tension and foreshadows the danger that Marcus will need to address.",
				},
				{
					ID:       "q5",
					Type:     "critical_thinking",
					Skill:    "Evaluating evidence",
					Question: "Which detail from the text best supports the idea that human skills remain valuable in an automated world?",
					Options: []string{
						"Marcus had worked for forty-seven years",
						"The automation system blinked with green lights",
						"The automated system hadn't detected the small sailboat",
						"The lighthouse is located on Georgian Bay",
					},
					Correct:     2,
					Explanation: "This detail directly shows a limitation of automation that human observation overcame.",
				},
			},
			CurriculumAlignment: []string{"comprehension", "critical_literacy", "vocabulary"},
		},
		{
			ID:           "indigenous_1",
			Title:        "Finding Home on the Ice",
			Grade:        "7-8",
			Type:         "Fiction - Short Story",
			Themes:       []string{"Indigenous identity", "Healing", "Cultural reclamation", "Residential schools"},
			RelatedTexts: []string{"Indian Horse by Richard Wagamese"},
			Text: `Thomas hadn't spoken his grandfather's language in years. At the residential school,
they had punished him for it—made him feel shame for the words that had once felt
like home in his mouth. Now, at seventeen, those words felt like strangers.

But here, on the frozen lake behind his grandmother's cabin in Northern Ontario,
something was stirring. His grandmother had brought him here after he'd been expelled
from his third school in the city. "The land remembers you," she'd said, "even when
you've forgotten yourself."

She handed him a hockey stick—not a new composite one, but an old wooden stick,
worn smooth by generations of hands. "Your great-grandfather carved this," she said.
"Before the schools. Before they tried to make us forget."

Thomas took the stick. It felt solid, real, connected to something deeper than
anything he'd felt in years. He skated out onto the ice, the sound of his blades
cutting through the silence.

At first, he just moved—no drills, no plays, no coaches screaming from the bench.
Just movement. The ice held him up. The wind carried the smell of pine and wood
smoke. And somewhere in his chest, something frozen began to thaw.

His grandmother watched from the shore, singing softly in their language—the
morning song her own mother had taught her. Thomas found himself skating to its
rhythm, his movements flowing like the words he couldn't yet speak but somehow
still remembered.

He wasn't playing hockey anymore. He was dancing. He was praying. He was finding
his way back to himself through the ice, through the stick in his hands, through
the voice of his grandmother carrying across the frozen lake.

When he finally stopped, breathing hard, tears freezing on his cheeks, his
grandmother was there with a blanket and hot tea. She didn't ask what he was
feeling. She didn't need to.

"The ice doesn't judge," she said simply. "It just holds you up while you
remember who you are."

Over the following weeks, Thomas began to learn the words again—slowly, stumbling
at first, then with growing confidence. Each word was a small act of reclamation.
Each morning on the ice was a step toward healing.

He wasn't the same boy who had arrived, angry and lost. He was becoming someone
new—someone who could hold both the pain of what had been taken and the hope of
what could be rebuilt. Someone who understood that healing isn't about forgetting
the wounds, but about finding the strength to carry them forward.`,
			Questions: []model.Question{
				{
					ID:       "q1",
					Type:     "comprehension",
					Skill:    "Central message",
					Question: "What is the main message of this story?",
					Options: []string{
						"Hockey is an important Canadian sport",
						"Healing from cultural trauma comes through reconnecting with identity and heritage",
						"Grandparents always know best",
						"Living in the city is harmful for Indigenous youth",
					},
					Correct:     1,
					Explanation: "The story shows Thomas healing by reconnecting with his language, land, and cultural practices after the trauma of residential school.",
				},
				{
					ID:       "q2",
					Type:     "inference",
					Skill:    "Making inferences",
					Question: "Why does the grandmother give Thomas the old wooden hockey stick instead of a new one?",
					Options: []string{
						"She couldn't afford a new stick",
						"The connection to ancestors and cultural continuity is more important than modern equipment",
						"New sticks are harder to use",
						"She doesn't understand modern hockey",
					},
					Correct:     1,
					Explanation: "The stick represents generational connection and cultural heritage—it links Thomas to his great-grandfather and traditions that existed 'before the schools.'",
				},
				{
					ID:       "q3",
					Type:     "analysis",
					Skill:    "Symbolic meaning",
					Question: "What does the frozen lake symbolize in this story?",
					Options: []string{
						"The danger of Canadian winters",
						"A place of healing that holds Thomas up while he recovers his identity",
						"The difficulty of life in Northern Ontario",
						"Thomas's cold emotions",
					},
					Correct:     1,
					Explanation: "The grandmother explicitly states 'The ice doesn't judge. It just holds you up while you remember who you are.' The lake represents a supportive space for healing.",
				},
				{
					ID:       "q4",
					Type:     "critical_thinking",
					Skill:    "Understanding historical context",
					Question: "The story references residential schools. Based on context clues, what can you infer about their impact?",
					Options: []string{
						"They provided good education for Indigenous children",
						"They separated children from their culture, language, and created lasting trauma",
						"They taught Indigenous children to play hockey",
						"They were located in Northern Ontario",
					},
					Correct:     1,
					Explanation: "The text shows Thomas was 'punished' for speaking his language and 'made to feel shame,' indicating cultural suppression and trauma.",
				},
				{
					ID:       "q5",
					Type:     "analysis",
					Skill:    "Text structure and argument",
					Question: "How does the author structure the story to support the theme of healing?",
					Options: []string{
						"Random events with no clear connection",
						"A journey from pain and disconnection → reconnection with culture → transformation and hope",
						"Comparison between city life and rural life",
						"A list of hockey techniques",
					},
					Correct:     1,
					Explanation: "The story follows a clear arc: Thomas arrives angry and disconnected, reconnects through language and cultural practice, and transforms into someone who can 'carry wounds forward' with hope.",
				},
				{
					ID:       "q6",
					Type:     "vocabulary",
					Skill:    "Context clues",
					Question: "What does 'reclamation' mean in the context of 'Each word was a small act of reclamation'?",
					Options: []string{
						"Destruction",
						"Taking back something that was lost or stolen",
						"Learning something new",
						"Forgetting the past",
					},
					Correct:     1,
					Explanation: "Reclamation means reclaiming or taking back. Thomas is reclaiming his language that was suppressed by the residential school.",
				},
			},
			CurriculumAlignment: []string{"comprehension", "critical_literacy", "vocabulary", "Canadian_literature"},
		},
		{
			ID:     "nonfiction_1",
			Title:  "The Science of Sleep",
			Grade:  "7-8",
			Type:   "Non-Fiction - Informational",
			Themes: []string{"Health", "Science", "Teen development"},
			Text: `Sleep is not simply a time when your body shuts down. While you rest, your brain
stays remarkably active, performing crucial functions that affect every aspect of
your physical and mental health.

During sleep, your brain cycles through different stages approximately every 90
minutes. The first stages involve light sleep, where you can be easily awakened.
As you progress into deeper stages, your brain waves slow dramatically, and your
body focuses on physical repair and growth.

The most fascinating stage is REM (Rapid Eye Movement) sleep, which typically
begins about 90 minutes after you fall asleep. During REM sleep, your brain
becomes almost as active as when you're awake, yet your body remains essentially
paralyzed. This is when most dreaming occurs, and researchers believe this stage
is essential for memory consolidation and emotional processing.

For teenagers, sleep is particularly critical. Adolescent brains are undergoing
significant development, and research shows that teens need 8-10 hours of sleep
per night—more than adults require. However, biological changes during puberty
shift the natural sleep-wake cycle later, making it difficult for teens to fall
asleep before 11 p.m.

This biological reality conflicts with early school start times, leading many
health organizations to advocate for later start times for middle and high schools.
Studies have shown that when schools delay their start times, students show
improved academic performance, better mental health, and reduced rates of car
accidents among teen drivers.

Insufficient sleep affects more than just tiredness. It impairs decision-making,
reduces immune function, and has been linked to increased risk of obesity and
depression. For students, sleep deprivation can significantly impact learning, as
the brain consolidates new information during sleep.

Understanding the science of sleep empowers you to make better choices about your
rest. Establishing consistent sleep schedules, limiting screen time before bed,
and creating a dark, cool sleeping environment can all improve sleep quality.`,
			Questions: []model.Question{
				{
					ID:       "q1",
					Type:     "comprehension",
					Skill:    "Identifying main ideas",
					Question: "What is the main purpose of this article?",
					Options: []string{
						"To explain why schools should start later",
						"To inform readers about the importance and science of sleep",
						"To convince readers to sleep more than 10 hours",
						"To describe different types of dreams",
					},
					Correct:     1,
					Explanation: "The article comprehensively covers sleep science, its stages, importance for teens, and practical advice.",
				},
				{
					ID:       "q2",
					Type:     "comprehension",
					Skill:    "Identifying details",
					Question: "According to the passage, how much sleep do teenagers need per night?",
					Options: []string{
						"6-8 hours",
						"7-9 hours",
						"8-10 hours",
						"10-12 hours",
					},
					Correct:     2,
					Explanation: "The passage explicitly states that teens need 8-10 hours of sleep per night.",
				},
				{
					ID:       "q3",
					Type:     "inference",
					Skill:    "Drawing conclusions",
					Question: "Based on the passage, why might a teenager who regularly sleeps only 6 hours struggle in school?",
					Options: []string{
						"They won't have enough REM sleep for memory consolidation",
						"They will sleep during class",
						"Teachers will be upset with them",
						"Their parents will be worried",
					},
					Correct:     0,
					Explanation: "The passage explains that the brain consolidates new information during sleep, particularly REM sleep.",
				},
				{
					ID:       "q4",
					Type:     "text_structure",
					Skill:    "Understanding text organization",
					Question: "How is this article primarily organized?",
					Options: []string{
						"Problem and solution",
						"Chronological order",
						"Compare and contrast",
						"Topic and supporting details",
					},
					Correct:     3,
					Explanation: "The article presents the topic of sleep and supports it with scientific details, statistics, and practical advice.",
				},
				{
					ID:       "q5",
					Type:     "critical_thinking",
					Skill:    "Evaluating evidence",
					Question: "Which type of evidence does the author use to support the argument for later school start times?",
					Options: []string{
						"Personal stories from students",
						"Research studies showing improved outcomes",
						"Opinions from teachers",
						"Historical examples from other countries",
					},
					Correct:     1,
					Explanation: "The author cites studies showing improved academic performance, mental health, and reduced accidents.",
				},
			},
			CurriculumAlignment: []string{"comprehension", "critical_literacy", "vocabulary"},
		},
		{
			ID:     "media_1",
			Title:  "Analyzing Social Media Influence",
			Grade:  "7-8",
			Type:   "Media Literacy",
			Themes: []string{"Media literacy", "Critical thinking", "Advertising"},
			Text: `SPONSORED POST @HealthyLifeNow

Start your morning RIGHT with PowerBoost Energy Drink!

"I used to struggle to get through my day, but ever since I started drinking PowerBoost
every morning, I have SO much energy! It's made from all-natural ingredients and tastes
amazing. Use my code HEALTHY20 for 20% off your first order! Link in bio.

#ad #sponsored #PowerBoost #EnergyDrink #HealthyLiving #MorningRoutine #Wellness
#NaturalEnergy #FitLife"

[Image shows influencer with 2.3 million followers holding bright green drink bottle,
smiling in an expensive-looking kitchen. Professional lighting and photography visible.]

---

PRODUCT LABEL (fine print):
PowerBoost Energy Drink
Serving Size: 1 can (250mL)
Caffeine: 150mg (equivalent to 1.5 cups of coffee)
Sugar: 27g
Other ingredients: Taurine, B-vitamins, natural and artificial flavours, citric acid

Warning: Not recommended for children, pregnant women, or people sensitive to caffeine.
Consume no more than 2 cans per day.

---

CONSUMER REVIEW EXCERPT (from independent website):
"I tried PowerBoost after seeing it promoted by several influencers. While it does
provide an energy boost, the effect wears off quickly and I experienced an energy
crash a few hours later. Also, the 'all-natural' claim is misleading—it contains
artificial flavours according to the label. The price is significantly higher than
similar energy drinks." - Verified Purchaser`,
			Questions: []model.Question{
				{
					ID:       "q1",
					Type:     "media_literacy",
					Skill:    "Identifying persuasive techniques",
					Question: "What persuasive technique is primarily used in the sponsored post?",
					Options: []string{
						"Appeal to authority (expert opinion)",
						"Testimonial and personal endorsement",
						"Statistical evidence",
						"Fear of missing out",
					},
					Correct:     1,
					Explanation: "The influencer shares their personal experience as a form of testimonial to persuade followers.",
				},
				{
					ID:       "q2",
					Type:     "critical_thinking",
					Skill:    "Identifying bias and perspective",
					Question: "Why is it important that the post includes '#ad #sponsored' hashtags?",
					Options: []string{
						"It makes the post more popular",
						"It's trendy on social media",
						"It legally discloses that the influencer was paid to promote the product",
						"It shows the influencer is professional",
					},
					Correct:     2,
					Explanation: "These hashtags are required disclosures indicating the influencer received compensation, which affects their objectivity.",
				},
				{
					ID:       "q3",
					Type:     "analysis",
					Skill:    "Comparing sources",
					Question: "What contradiction exists between the influencer's post and the product information?",
					Options: []string{
						"The price is different",
						"The influencer claims it's 'all-natural' but the label shows artificial flavours",
						"The caffeine content is wrong",
						"The serving size is incorrect",
					},
					Correct:     1,
					Explanation: "The influencer claims 'all-natural ingredients' but the label clearly lists 'artificial flavours.'",
				},
				{
					ID:       "q4",
					Type:     "media_literacy",
					Skill:    "Evaluating credibility",
					Question: "Which source would be most reliable for making a purchasing decision?",
					Options: []string{
						"The influencer's post because they have many followers",
						"The product label because it contains regulated information",
						"The kitchen in the photo because it looks expensive",
						"The hashtags because there are many of them",
					},
					Correct:     1,
					Explanation: "Product labels are regulated and must be accurate, unlike paid promotional content.",
				},
				{
					ID:       "q5",
					Type:     "critical_thinking",
					Skill:    "Media analysis",
					Question: "What is the most likely reason the photo shows professional lighting and an expensive kitchen?",
					Options: []string{
						"The influencer happens to live there",
						"To create an aspirational image that associates the product with success",
						"The lighting helps show the product colour",
						"It was the only available location",
					},
					Correct:     1,
					Explanation: "Professional, aspirational imagery is a marketing technique to make viewers associate the product with a desirable lifestyle.",
				},
			},
			CurriculumAlignment: []string{"critical_literacy", "comprehension"},
		},
	}
}
