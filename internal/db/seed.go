package db

import "errors"

// SeedGallery 在画廊表为空时写入演示数据，已有数据时不做任何修改。
// 返回实际插入的条目数。
func SeedGallery() (int, error) {
	if DB == nil {
		return 0, errors.New("database not initialized")
	}

	var count int64
	if err := DB.Model(&GalleryItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	items := demoGalleryItems()
	if err := DB.Create(&items).Error; err != nil {
		return 0, err
	}
	return len(items), nil
}

func demoGalleryItems() []GalleryItem {
	return []GalleryItem{
		{
			Title:       "Urban Landscape",
			Category:    "photography",
			Type:        "image",
			Image:       "https://images.unsplash.com/photo-1449824913935-59a10b8d2000?auto=format&fit=crop&w=500&h=600",
			Description: "Capturing the essence of modern city life through dramatic architectural perspectives and urban lighting",
			Height:      "h-64",
			Featured:    true,
			Tags:        StringList{"urban", "architecture", "cityscape"},
		},
		{
			Title:       "Portrait Series",
			Category:    "photography",
			Type:        "image",
			Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?auto=format&fit=crop&w=500&h=700",
			Description: "Intimate portraits exploring human emotion and expression through careful composition and lighting",
			Height:      "h-80",
			Tags:        StringList{"portrait", "emotion", "studio"},
		},
		{
			Title:       "Nature's Symphony",
			Category:    "photography",
			Type:        "image",
			Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?auto=format&fit=crop&w=500&h=500",
			Description: "Breathtaking landscapes showcasing the raw beauty and power of the natural world",
			Height:      "h-56",
			Featured:    true,
			Tags:        StringList{"nature", "landscape", "outdoor"},
		},
		{
			Title:       "Street Photography",
			Category:    "photography",
			Type:        "image",
			Image:       "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?auto=format&fit=crop&w=500&h=650",
			Description: "Candid moments of urban life captured through spontaneous street photography",
			Height:      "h-72",
			Tags:        StringList{"street", "candid", "urban"},
		},
		{
			Title:       "Contemporary Sculpture",
			Category:    "art",
			Type:        "image",
			Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?auto=format&fit=crop&w=500&h=600",
			Description: "Modern sculptural works exploring form, space, and material innovation",
			Height:      "h-64",
			Featured:    true,
			Tags:        StringList{"sculpture", "modern", "3d"},
		},
		{
			Title:       "Digital Paintings",
			Category:    "art",
			Type:        "image",
			Image:       "https://images.unsplash.com/photo-1541961017774-22349e4a1262?auto=format&fit=crop&w=500&h=650",
			Description: "Digital art pieces blending traditional painting techniques with modern technology",
			Height:      "h-72",
			Tags:        StringList{"digital", "painting", "technology"},
		},
		{
			Title:       "Minimalist Design",
			Category:    "design",
			Type:        "image",
			Image:       "https://images.unsplash.com/photo-1487958449943-2429e8be8625?auto=format&fit=crop&w=500&h=500",
			Description: "Clean, minimalist design solutions emphasizing simplicity and functionality",
			Height:      "h-56",
			Featured:    true,
			Tags:        StringList{"minimalist", "clean", "functional"},
		},
		{
			Title:       "Typography Art",
			Category:    "design",
			Type:        "image",
			Image:       "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?auto=format&fit=crop&w=500&h=650",
			Description: "Creative typography designs exploring letterforms as artistic expression",
			Height:      "h-72",
			Tags:        StringList{"typography", "lettering", "graphic"},
		},
		{
			Title:       "Cinematic Short Film",
			Category:    "video",
			Type:        "video",
			Image:       "https://images.unsplash.com/photo-1489599063916-f4e4b71c2f87?auto=format&fit=crop&w=500&h=600",
			VideoURL:    "https://sample-videos.com/zip/10/mp4/SampleVideo_1280x720_1mb.mp4",
			Description: "A captivating short film exploring themes of solitude and urban life",
			Height:      "h-64",
			Featured:    true,
			Tags:        StringList{"film", "cinematic", "narrative"},
		},
		{
			Title:       "Motion Graphics Demo",
			Category:    "video",
			Type:        "video",
			Image:       "https://images.unsplash.com/photo-1536240478700-b869070f9279?auto=format&fit=crop&w=500&h=700",
			VideoURL:    "https://sample-videos.com/zip/10/mp4/SampleVideo_640x360_1mb.mp4",
			Description: "Dynamic motion graphics showcasing brand identity and visual storytelling",
			Height:      "h-80",
			Tags:        StringList{"motion", "graphics", "animation"},
		},
		{
			Title:       "Documentary Excerpt",
			Category:    "video",
			Type:        "video",
			Image:       "https://images.unsplash.com/photo-1574717024653-61fd2cf4d44d?auto=format&fit=crop&w=500&h=500",
			VideoURL:    "https://sample-videos.com/zip/10/mp4/SampleVideo_1280x720_2mb.mp4",
			Description: "Documentary piece examining contemporary art movements and their impact",
			Height:      "h-56",
			Featured:    true,
			Tags:        StringList{"documentary", "art", "culture"},
		},
		{
			Title:       "Time-lapse Photography",
			Category:    "video",
			Type:        "video",
			Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?auto=format&fit=crop&w=500&h=650",
			VideoURL:    "https://sample-videos.com/zip/10/mp4/SampleVideo_640x360_2mb.mp4",
			Description: "Mesmerizing time-lapse sequences capturing the rhythm of city life",
			Height:      "h-72",
			Tags:        StringList{"timelapse", "city", "rhythm"},
		},
	}
}
